package fetchkit

import (
	"crypto/x509"
	"testing"
)

func TestTrustPolicy_FlagSet(t *testing.T) {
	policy := trustPolicy(AllowSelfSignedCertificates)

	chains := [][]*x509.Certificate{
		nil,
		{},
		{{}},
		{{}, {}},
	}
	for _, chain := range chains {
		if got := policy(chain); got != VerdictTrust {
			t.Errorf("expected trust for chain of %d certs, got %s", len(chain), got)
		}
	}
}

func TestTrustPolicy_FlagAbsent(t *testing.T) {
	policy := trustPolicy(0)

	chains := [][]*x509.Certificate{
		nil,
		{},
		{{}},
	}
	for _, chain := range chains {
		if got := policy(chain); got != VerdictDefault {
			t.Errorf("expected default validation for chain of %d certs, got %s", len(chain), got)
		}
	}
}

func TestTrustVerdict_String(t *testing.T) {
	tests := []struct {
		verdict TrustVerdict
		want    string
	}{
		{VerdictDefault, "default"},
		{VerdictTrust, "trust"},
		{TrustVerdict(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.verdict.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
