package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyRoundTrip(t *testing.T) {
	keys := testKeys()
	factory := NewFactory(keys)
	verifier := NewSignatureVerifier(keys)

	for _, name := range []string{"liqpay", "fondy", "monobank"} {
		gw, err := factory.Gateway(name)
		require.NoError(t, err)

		report, err := gw.CheckPaymentStatus("tok-" + name)
		require.NoError(t, err)

		assert.True(t, verifier.Verify(name, report.Data, report.Signature), name)
	}
}

func TestVerifyRejectsTamperedData(t *testing.T) {
	keys := testKeys()
	verifier := NewSignatureVerifier(keys)

	gw := NewMonobank(keys["monobank"])
	report, err := gw.CheckPaymentStatus("MB-token")
	require.NoError(t, err)

	assert.False(t, verifier.Verify("monobank", report.Data+"x", report.Signature))
	assert.False(t, verifier.Verify("monobank", report.Data, report.Signature+"x"))
}

func TestVerifyRejectsWrongGatewayKey(t *testing.T) {
	keys := testKeys()
	verifier := NewSignatureVerifier(keys)

	// signed with liqpay's key, presented as fondy's
	gw := NewLiqpay(keys["liqpay"])
	report, err := gw.CheckPaymentStatus("LP-token")
	require.NoError(t, err)

	assert.False(t, verifier.Verify("fondy", report.Data, report.Signature))
}

func TestVerifyUnknownGateway(t *testing.T) {
	verifier := NewSignatureVerifier(testKeys())
	assert.False(t, verifier.Verify("paypal", "data", "sig"))
}
