package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// Package is one batch of readings received from a sensor.
type Package struct {
	Code string
	Data []float64
}

func (p Package) String() string {
	fields := make([]string, len(p.Data))
	for i, v := range p.Data {
		fields[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return p.Code + ":" + strings.Join(fields, ",")
}

// ParsePackage reads a package written as CODE:v1,v2,... such as
// "RUN:15000,1,75". The code is not validated here; ReadPackage does that.
func ParsePackage(s string) (Package, error) {
	code, rest, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || code == "" {
		return Package{}, fmt.Errorf("%w: expected CODE:v1,v2,... got %q", ErrInvalidField, s)
	}

	pkg := Package{Code: code}
	if strings.TrimSpace(rest) == "" {
		return pkg, nil
	}

	for _, raw := range strings.Split(rest, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Package{}, fmt.Errorf("%w: %q in %q: %v", ErrInvalidField, raw, s, err)
		}
		pkg.Data = append(pkg.Data, v)
	}

	return pkg, nil
}
