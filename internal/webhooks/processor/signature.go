package processor

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"ltrack-server/internal/observability"
)

// SignaturePolicy decides what happens when X-Line-Signature does not check out
type SignaturePolicy string

const (
	// SignaturePolicyStrict rejects missing or mismatched signatures
	SignaturePolicyStrict SignaturePolicy = "strict"
	// SignaturePolicyRelaxed logs the problem and accepts the request
	SignaturePolicyRelaxed SignaturePolicy = "relaxed"
)

var (
	ErrMissingSignature       = errors.New("missing line signature")
	ErrInvalidSignature       = errors.New("invalid line signature")
	ErrUnknownSignaturePolicy = errors.New("unknown signature policy")
)

// ParseSignaturePolicy converts a configured mode into a policy
func ParseSignaturePolicy(mode string) (SignaturePolicy, error) {
	switch SignaturePolicy(mode) {
	case SignaturePolicyStrict, SignaturePolicyRelaxed:
		return SignaturePolicy(mode), nil
	default:
		return "", fmt.Errorf("%q: %w", mode, ErrUnknownSignaturePolicy)
	}
}

// SignatureVerifier checks LINE webhook signatures under a fixed policy
type SignatureVerifier struct {
	policy SignaturePolicy
	logger *observability.Logger
}

func NewSignatureVerifier(policy SignaturePolicy, logger *observability.Logger) SignatureVerifier {
	return SignatureVerifier{policy: policy, logger: logger}
}

func (v SignatureVerifier) Policy() SignaturePolicy {
	return v.policy
}

// ComputeSignature returns the base64 HMAC-SHA256 of body keyed by the channel secret
func ComputeSignature(channelSecret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(channelSecret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify checks signature against the raw body. Under the relaxed policy
// failures are logged and nil is returned.
func (v SignatureVerifier) Verify(ctx context.Context, body []byte, signature, channelSecret string) error {
	err := check(body, signature, channelSecret)
	if err == nil {
		return nil
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "signature_policy", Value: string(v.policy)})
	if v.policy == SignaturePolicyStrict {
		v.logger.InfoWithError(ctx, "rejecting webhook signature", err)
		return err
	}
	v.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "signature_error", Value: err.Error()}), "accepting webhook with unverified signature")
	return nil
}

func check(body []byte, signature, channelSecret string) error {
	if signature == "" {
		return ErrMissingSignature
	}
	if channelSecret == "" {
		return fmt.Errorf("no channel secret configured: %w", ErrInvalidSignature)
	}

	provided, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return fmt.Errorf("signature is not base64: %w", ErrInvalidSignature)
	}
	mac := hmac.New(sha256.New, []byte(channelSecret))
	mac.Write(body)
	if !hmac.Equal(provided, mac.Sum(nil)) {
		return ErrInvalidSignature
	}
	return nil
}
