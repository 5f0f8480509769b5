// Command dnsquery sends a single recursion-desired query to one server and
// prints the decoded reply, stub-resolver style. It never follows referrals;
// use rootwalk for iterative resolution.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/jroosing/rootwalk/internal/dns"
	"github.com/jroosing/rootwalk/internal/logging"
	"github.com/jroosing/rootwalk/internal/resolver"
)

func main() {
	var (
		server   = flag.String("server", "8.8.8.8", "DNS server IP")
		name     = flag.String("name", "example.com", "Query name")
		qtype    = flag.Int("qtype", 1, "Query type (numeric, A=1)")
		timeout  = flag.Duration("timeout", 2*time.Second, "Timeout")
		logLevel = flag.String("log-level", "WARN", "Log level (DEBUG, INFO, WARN, ERROR)")
		quiet    = flag.Bool("quiet", false, "Suppress output (exit status indicates success)")
	)
	flag.Parse()

	logger := logging.Configure(logging.Config{Level: *logLevel})

	r, err := resolver.New(resolver.Config{
		Timeout:          *timeout,
		RecursionDesired: true,
		Logger:           logger,
	}, nil, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dnsquery: %v\n", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	p, err := r.Query(ctx, *server, *name, dns.RecordType(*qtype))
	if err != nil {
		if !*quiet {
			fmt.Fprintf(os.Stderr, "dnsquery: %v\n", err)
		}
		os.Exit(1)
	}
	if *quiet {
		return
	}

	fmt.Printf("id=%d rcode=%d answers=%d authorities=%d additionals=%d\n",
		p.Header.ID,
		dns.RCodeFromFlags(p.Header.Flags),
		len(p.Answers),
		len(p.Authorities),
		len(p.Additionals),
	)

	rows := make([]string, 0, len(p.Answers))
	for _, rr := range p.Answers {
		rows = append(rows, rr.String())
	}
	sort.Strings(rows)
	for _, s := range rows {
		fmt.Println(s)
	}
}
