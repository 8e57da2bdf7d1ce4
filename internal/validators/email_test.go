package validators

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeResolver struct {
	mx  map[string]int
	ips map[string]int
}

func (f fakeResolver) LookupMX(_ context.Context, name string) ([]*net.MX, error) {
	n, ok := f.mx[name]
	if !ok {
		return nil, errors.New("no such host")
	}
	return make([]*net.MX, n), nil
}

func (f fakeResolver) LookupIPAddr(_ context.Context, host string) ([]net.IPAddr, error) {
	n, ok := f.ips[host]
	if !ok {
		return nil, errors.New("no such host")
	}
	return make([]net.IPAddr, n), nil
}

func TestEmailDomainCheck(t *testing.T) {
	check := EmailDomainCheck(fakeResolver{
		mx:  map[string]int{"mail.test": 1},
		ips: map[string]int{"web.test": 2},
	}, time.Second)

	cases := map[string]bool{
		"ana@mail.test":  true,
		"ana@MAIL.TEST":  true,
		"ana@web.test":   true,
		"ana@none.test":  false,
		"ana":            false,
		"ana@":           false,
		"@mail.test":     false,
		" ana@web.test ": true,
	}
	for email, want := range cases {
		assert.Equal(t, want, check(email), email)
	}
}
