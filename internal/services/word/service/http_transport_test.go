package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNormalizeHost(t *testing.T) {
	tests := []struct {
		name   string
		host   string
		want   string
		wantOK bool
	}{
		{name: "plain host", host: "localhost", want: "localhost", wantOK: true},
		{name: "host with port", host: "localhost:8081", want: "localhost", wantOK: true},
		{name: "ipv4 with port", host: "127.0.0.1:8081", want: "127.0.0.1", wantOK: true},
		{name: "bracketed ipv6", host: "[::1]", want: "::1", wantOK: true},
		{name: "bracketed ipv6 with port", host: "[::1]:8081", want: "::1", wantOK: true},
		{name: "bare ipv6", host: "::1", want: "::1", wantOK: true},
		{name: "empty", host: "", wantOK: false},
		{name: "whitespace", host: "   ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalizeHost(tt.host)
			if ok != tt.wantOK {
				t.Fatalf("normalizeHost(%q) ok = %v, want %v", tt.host, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Fatalf("normalizeHost(%q) = %q, want %q", tt.host, got, tt.want)
			}
		})
	}
}

func TestIsLoopbackHost(t *testing.T) {
	tests := []struct {
		host string
		want bool
	}{
		{host: "localhost", want: true},
		{host: "LOCALHOST", want: true},
		{host: "127.0.0.1", want: true},
		{host: "::1", want: true},
		{host: "example.com", want: false},
		{host: "127.0.0.2", want: false},
		{host: "", want: false},
	}

	for _, tt := range tests {
		if got := isLoopbackHost(tt.host); got != tt.want {
			t.Errorf("isLoopbackHost(%q) = %v, want %v", tt.host, got, tt.want)
		}
	}
}

func TestParseAllowedHosts(t *testing.T) {
	hosts := parseAllowedHosts([]string{" Example.com ", "", "mcp.internal"})
	if len(hosts) != 2 {
		t.Fatalf("expected 2 hosts, got %d", len(hosts))
	}
	if _, ok := hosts["example.com"]; !ok {
		t.Error("expected example.com to be allowed")
	}
	if _, ok := hosts["mcp.internal"]; !ok {
		t.Error("expected mcp.internal to be allowed")
	}
}

func TestValidateLocalRequest(t *testing.T) {
	transport := NewHTTPTransport("", nil)
	transport.allowedHosts = parseAllowedHosts([]string{"mcp.internal"})

	tests := []struct {
		name    string
		host    string
		origin  string
		wantErr bool
	}{
		{name: "loopback host", host: "localhost:8081"},
		{name: "allowed host", host: "mcp.internal:443"},
		{name: "unknown host", host: "evil.example:8081", wantErr: true},
		{name: "loopback origin", host: "localhost:8081", origin: "http://localhost:3000"},
		{name: "rebinding origin", host: "localhost:8081", origin: "http://evil.example", wantErr: true},
		{name: "malformed origin", host: "localhost:8081", origin: "://bad", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://"+tt.host+"/mcp", nil)
			req.Host = tt.host
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			err := transport.validateLocalRequest(req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateLocalRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAuthorizeRequest(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		authHeader string
		want       bool
	}{
		{name: "no token configured", token: "", want: true},
		{name: "valid token", token: "secret", authHeader: "Bearer secret", want: true},
		{name: "missing header", token: "secret", want: false},
		{name: "wrong scheme", token: "secret", authHeader: "Basic secret", want: false},
		{name: "wrong token", token: "secret", authHeader: "Bearer nope", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := NewHTTPTransport("", nil)
			transport.authToken = tt.token

			req := httptest.NewRequest(http.MethodPost, "http://localhost:8081/mcp", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()
			if got := transport.authorizeRequest(rec, req); got != tt.want {
				t.Fatalf("authorizeRequest() = %v, want %v", got, tt.want)
			}
			if !tt.want && rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestGuardRejectsBadHost(t *testing.T) {
	transport := NewHTTPTransport("", nil)
	handler := transport.guard(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}), true)

	req := httptest.NewRequest(http.MethodGet, "http://evil.example/mcp", nil)
	req.Host = "evil.example"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHealthEndpointSkipsAuth(t *testing.T) {
	transport := NewHTTPTransport("", nil)
	transport.authToken = "secret"
	handler := transport.guard(http.HandlerFunc(handleHealth), false)

	req := httptest.NewRequest(http.MethodGet, "http://localhost:8081/mcp/health", nil)
	req.Host = "localhost:8081"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "OK" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestHealthRejectsPost(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "http://localhost:8081/mcp/health", nil)
	rec := httptest.NewRecorder()
	handleHealth(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}
