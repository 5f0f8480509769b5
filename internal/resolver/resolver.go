// Package resolver implements iterative DNS resolution: starting at a root
// server, send a query, decode the reply, and follow referrals down the
// hierarchy until some nameserver answers with an address.
//
// Each reply drives one of four outcomes, in priority order: an answer
// record of the requested family terminates the walk; a glue address in the
// additional section becomes the next nameserver; an authority NS record
// triggers a nested resolution of that nameserver's own name; anything else
// fails the attempt. There is no retry and no rotation across sibling
// nameservers; the only hardening beyond the reference behavior is a query
// budget shared across the walk and all nested resolutions.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/jroosing/rootwalk/internal/dns"
	"github.com/jroosing/rootwalk/internal/transport"
)

const (
	// DefaultRootServer is a.root-servers.net, the conventional first hop.
	DefaultRootServer = "198.41.0.4"

	// DefaultMaxDepth bounds the total number of queries one Resolve call
	// may issue, counting nested nameserver lookups. The hierarchy
	// converges in a handful of hops; anything near this bound is a
	// referral loop fed by untrusted input.
	DefaultMaxDepth = 30
)

var (
	// ErrNoResolutionPath indicates a reply with no answer, no glue
	// address, and no referral to follow.
	ErrNoResolutionPath = errors.New("resolver: no resolution path")

	// ErrResolutionDepth indicates the query budget ran out before the
	// walk converged.
	ErrResolutionDepth = errors.New("resolver: referral depth exceeded")
)

// Config carries the resolver's tunables. The zero value is usable after
// Validate fills in defaults.
type Config struct {
	RootServer       string        // starting nameserver IP; DefaultRootServer if empty
	Timeout          time.Duration // per round trip; transport.DefaultTimeout if zero
	MaxDepth         int           // query budget per Resolve call; DefaultMaxDepth if zero
	RecursionDesired bool          // set RD on queries (stub pattern); clear for iterative walking
	Logger           *slog.Logger  // slog.Default if nil
}

// Validate normalizes the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.RootServer == "" {
		c.RootServer = DefaultRootServer
	}
	if net.ParseIP(c.RootServer) == nil {
		return fmt.Errorf("root server must be an IP address, got %q", c.RootServer)
	}
	if c.Timeout <= 0 {
		c.Timeout = transport.DefaultTimeout
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = DefaultMaxDepth
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return nil
}

// Resolver walks the DNS hierarchy. It holds no state between Resolve
// calls; the current-nameserver variable lives on the stack of each walk.
type Resolver struct {
	cfg       Config
	exchanger transport.Exchanger
	nextID    transport.IDSource
	log       *slog.Logger
}

// New creates a Resolver. A nil exchanger gets a UDP transport with the
// configured timeout; a nil ids gets the uniform random source. Tests pass
// both to substitute scripted replies and deterministic transaction IDs.
func New(cfg Config, exchanger transport.Exchanger, ids transport.IDSource) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if exchanger == nil {
		exchanger = transport.NewUDPExchanger(cfg.Timeout)
	}
	if ids == nil {
		ids = transport.NewRandomIDSource()
	}
	return &Resolver{cfg: cfg, exchanger: exchanger, nextID: ids, log: cfg.Logger}, nil
}

// Resolve walks the hierarchy from the root until a nameserver answers with
// an address for name, returned in textual form. The context bounds the
// whole walk, not just a single round trip.
func (r *Resolver) Resolve(ctx context.Context, name string, qtype dns.RecordType) (string, error) {
	budget := r.cfg.MaxDepth
	return r.resolve(ctx, name, qtype, &budget)
}

// resolve is one walk from the root. The budget is shared with nested
// walks so a referral loop cannot multiply the bound.
func (r *Resolver) resolve(ctx context.Context, name string, qtype dns.RecordType, budget *int) (string, error) {
	server := r.cfg.RootServer
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if *budget <= 0 {
			return "", fmt.Errorf("%w: gave up resolving %q after %d queries", ErrResolutionDepth, name, r.cfg.MaxDepth)
		}
		*budget--

		r.log.Info("querying nameserver", "server", server, "name", name, "qtype", qtype.String())
		reply, err := r.Query(ctx, server, name, qtype)
		if err != nil {
			return "", err
		}

		if addr := answerAddress(reply, qtype); addr != "" {
			return addr, nil
		}
		if glue := glueAddress(reply); glue != "" {
			server = glue
			continue
		}
		if ns := authorityNameserver(reply); ns != "" {
			r.log.Debug("referral without glue, resolving nameserver", "nameserver", ns)
			addr, err := r.resolve(ctx, ns, dns.TypeA, budget)
			if err != nil {
				return "", err
			}
			server = addr
			continue
		}
		return "", fmt.Errorf("%w: reply from %s for %q has no answer, glue address, or referral",
			ErrNoResolutionPath, server, name)
	}
}

// Query sends one query for (name, qtype) to server and returns the
// validated reply. The RD bit follows Config.RecursionDesired: clear for
// iterative walking, set for stub-style single-shot queries. Both call
// patterns share this builder.
func (r *Resolver) Query(ctx context.Context, server, name string, qtype dns.RecordType) (dns.Packet, error) {
	id := r.nextID()
	query, err := dns.MarshalQuery(id, name, qtype, r.cfg.RecursionDesired)
	if err != nil {
		return dns.Packet{}, err
	}
	raw, err := r.exchanger.Exchange(ctx, server, query)
	if err != nil {
		return dns.Packet{}, err
	}
	reply, err := dns.ParseResponseBounded(raw)
	if err != nil {
		return dns.Packet{}, fmt.Errorf("reply from %s: %w", server, err)
	}
	if reply.Header.ID != id {
		return dns.Packet{}, fmt.Errorf("reply from %s: transaction id mismatch (sent %d, got %d)",
			server, id, reply.Header.ID)
	}
	if reply.TrailingBytes > 0 {
		r.log.Debug("reply has trailing bytes", "server", server, "bytes", reply.TrailingBytes)
	}
	return reply, nil
}

// answerAddress returns the first answer address of the requested family.
// AAAA terminates the walk only when the caller asked for it; referral
// chasing always uses A.
func answerAddress(p dns.Packet, qtype dns.RecordType) string {
	want := dns.TypeA
	if qtype == dns.TypeAAAA {
		want = dns.TypeAAAA
	}
	for _, rr := range p.Answers {
		if ip, ok := rr.(*dns.IPRecord); ok && ip.Type() == want {
			return ip.Addr.String()
		}
	}
	return ""
}

// glueAddress returns the first additional A record's address, the glue a
// referral pairs with its NS records.
func glueAddress(p dns.Packet) string {
	for _, rr := range p.Additionals {
		if ip, ok := rr.(*dns.IPRecord); ok && ip.Type() == dns.TypeA {
			return ip.Addr.String()
		}
	}
	return ""
}

// authorityNameserver returns the first authority NS record's target.
func authorityNameserver(p dns.Packet) string {
	for _, rr := range p.Authorities {
		if ns, ok := rr.(*dns.NameRecord); ok && ns.Type() == dns.TypeNS {
			return ns.Target
		}
	}
	return ""
}
