package cmd

import (
	"flag"
	"testing"

	"github.com/etnz/dividends"
)

func parse(t *testing.T, args ...string) *flag.FlagSet {
	t.Helper()
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing %v: %v", args, err)
	}
	return f
}

func TestParseArgs(t *testing.T) {
	testCases := []struct {
		name         string
		args         []string
		wantCategory dividends.Category
		wantPath     string
		wantErr      bool
	}{
		{
			name:         "file only defaults to dividend",
			args:         []string{"2025.csv"},
			wantCategory: dividends.Dividend,
			wantPath:     "2025.csv",
		},
		{
			name:         "explicit category",
			args:         []string{"investment", "2025.csv"},
			wantCategory: dividends.Investment,
			wantPath:     "2025.csv",
		},
		{
			name:    "unknown category",
			args:    []string{"payouts", "2025.csv"},
			wantErr: true,
		},
		{
			name:    "no arguments",
			args:    nil,
			wantErr: true,
		},
		{
			name:    "too many arguments",
			args:    []string{"dividend", "2025.csv", "extra"},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			category, path, err := parseArgs(parse(t, tc.args...))
			if tc.wantErr {
				if err == nil {
					t.Errorf("parseArgs(%v) = (%q, %q), want error", tc.args, category, path)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseArgs(%v) unexpected error: %v", tc.args, err)
			}
			if category != tc.wantCategory || path != tc.wantPath {
				t.Errorf("parseArgs(%v) = (%q, %q), want (%q, %q)",
					tc.args, category, path, tc.wantCategory, tc.wantPath)
			}
		})
	}
}
