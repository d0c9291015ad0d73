// internal/providers/availability/availability_test.go
package availability

import (
	"context"
	"net"
	"testing"

	"domainlens/internal/core/domain"
	"domainlens/internal/core/ports"
	"domainlens/internal/platform/errors"
	"domainlens/internal/platform/logx"
	"domainlens/internal/testutil"
)

func newTestProvider() *Provider {
	return New(ports.DefaultProviderConfig(), logx.NewSilent())
}

func TestEnrichWhoisAvailable(t *testing.T) {
	p := newTestProvider()
	p.whoisQuery = func(name string) (string, error) {
		return "No match for \"EXAMPLE-FREE.COM\".\r\n>>> Last update of whois database <<<", nil
	}
	p.nsLookup = func(ctx context.Context, name string) ([]*net.NS, error) {
		t.Fatal("dns fallback should not run when whois answers")
		return nil, nil
	}

	enrich, err := p.Enrich(context.Background(), domain.ParseDomain("example-free.com"))
	testutil.AssertNoError(t, err, "Enrich")
	testutil.AssertTrue(t, enrich.Availability != nil, "availability signal missing")
	testutil.AssertEqual(t, enrich.Availability.Status, domain.StatusAvailable, "status")
	testutil.AssertEqual(t, enrich.Availability.Method, "whois", "method")
	testutil.AssertFalse(t, enrich.Availability.CheckedAt.IsZero(), "CheckedAt not set")
}

func TestEnrichWhoisOwned(t *testing.T) {
	p := newTestProvider()
	p.whoisQuery = func(name string) (string, error) {
		return "Domain Name: EXAMPLE.COM\nRegistrar: Example Registrar, LLC", nil
	}

	enrich, err := p.Enrich(context.Background(), domain.ParseDomain("example.com"))
	testutil.AssertNoError(t, err, "Enrich")
	testutil.AssertEqual(t, enrich.Availability.Status, domain.StatusOwned, "status")
	testutil.AssertEqual(t, enrich.Availability.Method, "whois", "method")
}

func TestEnrichDNSFallbackOwned(t *testing.T) {
	p := newTestProvider()
	p.whoisQuery = func(name string) (string, error) {
		return "", errors.New("whois server unreachable")
	}
	p.nsLookup = func(ctx context.Context, name string) ([]*net.NS, error) {
		return []*net.NS{{Host: "ns1.example.net."}}, nil
	}

	enrich, err := p.Enrich(context.Background(), domain.ParseDomain("example.com"))
	testutil.AssertNoError(t, err, "Enrich")
	testutil.AssertEqual(t, enrich.Availability.Status, domain.StatusOwned, "status")
	testutil.AssertEqual(t, enrich.Availability.Method, "dns", "method")
}

func TestEnrichDNSFallbackNXDomain(t *testing.T) {
	p := newTestProvider()
	p.whoisQuery = func(name string) (string, error) {
		return "", errors.New("whois server unreachable")
	}
	p.nsLookup = func(ctx context.Context, name string) ([]*net.NS, error) {
		return nil, &net.DNSError{Err: "no such host", Name: name, IsNotFound: true}
	}

	enrich, err := p.Enrich(context.Background(), domain.ParseDomain("surely-unregistered-zzz.com"))
	testutil.AssertNoError(t, err, "Enrich")
	testutil.AssertEqual(t, enrich.Availability.Status, domain.StatusAvailable, "status")
	testutil.AssertEqual(t, enrich.Availability.Method, "dns", "method")
}

func TestEnrichDNSFallbackTransientFailure(t *testing.T) {
	p := newTestProvider()
	p.whoisQuery = func(name string) (string, error) {
		return "", errors.New("whois server unreachable")
	}
	p.nsLookup = func(ctx context.Context, name string) ([]*net.NS, error) {
		return nil, &net.DNSError{Err: "i/o timeout", Name: name, IsTimeout: true}
	}

	enrich, err := p.Enrich(context.Background(), domain.ParseDomain("example.com"))
	testutil.AssertNoError(t, err, "Enrich")
	// Un fallo transitorio no debe afirmar disponibilidad
	testutil.AssertEqual(t, enrich.Availability.Status, domain.StatusUnknown, "status")
}

func TestRegistrableDomainUsesPublicSuffix(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"www.example.co.uk", "example.co.uk"},
		{"blog.shop.example.com", "example.com"},
		{"example.com", "example.com"},
	}
	for _, tc := range cases {
		got := registrableDomain(tc.in)
		if got != tc.want {
			t.Errorf("registrableDomain(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsAvailableResponsePatterns(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"NOT FOUND\n>>> Last update", true},
		{"No entries found for the selected source(s).", true},
		{"Status: free", true},
		{"The queried object does not exist: is available for registration", true},
		{"Domain Name: TAKEN.COM\nRegistry Domain ID: 123", false},
	}
	for _, tc := range cases {
		if got := isAvailableResponse(tc.raw); got != tc.want {
			t.Errorf("isAvailableResponse(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}
