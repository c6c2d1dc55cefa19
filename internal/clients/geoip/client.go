package geoip

import (
	"net"
	"strings"

	"ltrack-server/internal/observability"

	"github.com/oschwald/maxminddb-golang"
)

// Reader resolves client IPs to ISO country codes from a MaxMind database.
// A Reader without a database answers "" for every lookup.
type Reader struct {
	db     *maxminddb.Reader
	logger *observability.Logger
}

// Open opens a .mmdb file. An empty path yields a no-op Reader.
func Open(path string, logger *observability.Logger) (*Reader, error) {
	if path == "" {
		return &Reader{logger: logger}, nil
	}
	db, err := maxminddb.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{db: db, logger: logger}, nil
}

func (r *Reader) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Enabled reports whether lookups can return data
func (r *Reader) Enabled() bool {
	return r != nil && r.db != nil
}

// Country returns the upper-case ISO 3166 code for ip, or "" when unknown
func (r *Reader) Country(ipStr string) string {
	if !r.Enabled() {
		return ""
	}
	ip := net.ParseIP(strings.TrimSpace(ipStr))
	if ip == nil {
		return ""
	}

	var record struct {
		Country struct {
			ISOCode string `maxminddb:"iso_code"`
		} `maxminddb:"country"`
		RegisteredCountry struct {
			ISOCode string `maxminddb:"iso_code"`
		} `maxminddb:"registered_country"`
	}
	if err := r.db.Lookup(ip, &record); err != nil {
		return ""
	}

	code := record.Country.ISOCode
	if code == "" {
		code = record.RegisteredCountry.ISOCode
	}
	return strings.ToUpper(code)
}
