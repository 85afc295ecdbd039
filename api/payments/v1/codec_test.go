package paymentsv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestCodec_Registered(t *testing.T) {
	t.Parallel()

	codec := encoding.GetCodec(CodecName)
	require.NotNil(t, codec)
	assert.Equal(t, CodecName, codec.Name())
}

func TestCodec_OmitsEmptyFailureReason(t *testing.T) {
	t.Parallel()

	data, err := Codec{}.Marshal(&MakePaymentResponse{Success: true, PaymentID: "p-1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"paymentId":"p-1"}`, string(data))
}
