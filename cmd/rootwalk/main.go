// Command rootwalk resolves a domain name iteratively, walking the DNS
// hierarchy from a root server down to an authoritative answer.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jroosing/rootwalk/internal/dns"
	"github.com/jroosing/rootwalk/internal/logging"
	"github.com/jroosing/rootwalk/internal/resolver"
)

func main() {
	var (
		name     = flag.String("name", "", "Domain name to resolve")
		qtype    = flag.Int("qtype", 1, "Query type (numeric, A=1, AAAA=28)")
		root     = flag.String("root", resolver.DefaultRootServer, "Root server IP to start from")
		timeout  = flag.Duration("timeout", 3*time.Second, "Per-query timeout")
		deadline = flag.Duration("deadline", 15*time.Second, "Deadline for the whole walk")
		maxDepth = flag.Int("max-depth", resolver.DefaultMaxDepth, "Maximum queries per resolution")
		logLevel = flag.String("log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")
	)
	flag.Parse()

	if *name == "" {
		fmt.Fprintln(os.Stderr, "rootwalk: -name is required")
		flag.Usage()
		os.Exit(2)
	}

	logger := logging.Configure(logging.Config{Level: *logLevel})

	r, err := resolver.New(resolver.Config{
		RootServer: *root,
		Timeout:    *timeout,
		MaxDepth:   *maxDepth,
		Logger:     logger,
	}, nil, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rootwalk: %v\n", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *deadline)
	defer cancel()

	addr, err := r.Resolve(ctx, *name, dns.RecordType(*qtype))
	if err != nil {
		fmt.Fprintf(os.Stderr, "rootwalk: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(addr)
}
