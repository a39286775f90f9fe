package appupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNormalizeReleaseVersion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "valid with prefix", input: "v1.2.3", want: "v1.2.3"},
		{name: "valid without prefix", input: "1.2.3", want: "v1.2.3"},
		{name: "pre-release skipped", input: "v1.2.3-rc.1", want: ""},
		{name: "dev skipped", input: "dev", want: ""},
		{name: "empty skipped", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeReleaseVersion(tt.input)
			if got != tt.want {
				t.Fatalf("normalizeReleaseVersion(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCheckSkipsDevBuilds(t *testing.T) {
	result, err := Check(context.Background(), CheckOptions{CurrentVersion: "dev"})
	if err != nil {
		t.Fatalf("Check returned error for dev build: %v", err)
	}
	if result.UpdateAvailable {
		t.Fatal("dev build flagged for update")
	}
	if result.LatestVersion != "" {
		t.Fatalf("dev build fetched latest version %q", result.LatestVersion)
	}
}

func TestCheckComparesVersions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name":"v1.4.0"}`))
	}))
	defer srv.Close()

	tests := []struct {
		name    string
		current string
		want    bool
	}{
		{name: "older", current: "v1.3.0", want: true},
		{name: "same", current: "v1.4.0", want: false},
		{name: "newer", current: "v1.5.0", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Check(context.Background(), CheckOptions{
				CurrentVersion:   tt.current,
				LatestReleaseURL: srv.URL,
			})
			if err != nil {
				t.Fatalf("Check: %v", err)
			}
			if result.UpdateAvailable != tt.want {
				t.Fatalf("UpdateAvailable = %v, want %v", result.UpdateAvailable, tt.want)
			}
			if result.LatestVersion != "v1.4.0" {
				t.Fatalf("LatestVersion = %q, want v1.4.0", result.LatestVersion)
			}
		})
	}
}

func TestCheckSurfacesHTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := Check(context.Background(), CheckOptions{
		CurrentVersion:   "v1.0.0",
		LatestReleaseURL: srv.URL,
	})
	if err == nil {
		t.Fatal("expected error for HTTP 403")
	}
}
