package entity

import (
	"testing"

	errs "github.com/announcement7/balance-system-backend/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "nine digits starting with 7", input: "712345678", want: "254712345678"},
		{name: "ten digits starting with 07", input: "0712345678", want: "254712345678"},
		{name: "already international", input: "254712345678", want: "254712345678"},
		{name: "plus prefix stripped", input: "+254712345678", want: "254712345678"},
		{name: "spaces and dashes stripped", input: "0712-345 678", want: "254712345678"},
		{name: "same subscriber all three shapes", input: "0733999000", want: "254733999000"},
		{name: "nine digit shape of same subscriber", input: "733999000", want: "254733999000"},
		{name: "empty", input: "", wantErr: true},
		{name: "too short", input: "71234567", wantErr: true},
		{name: "too long", input: "2547123456789", wantErr: true},
		{name: "ten digits not starting 07", input: "1712345678", wantErr: true},
		{name: "twelve digits not starting 254", input: "255712345678", wantErr: true},
		{name: "letters only", input: "not-a-phone", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePhone(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidPhone)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizePhoneCanonicalConvergence(t *testing.T) {
	// Every accepted shape of one subscriber number must normalize to
	// the same canonical key, otherwise callback matching breaks.
	shapes := []string{"712345678", "0712345678", "254712345678", "+254 712 345 678"}

	for _, shape := range shapes {
		got, err := NormalizePhone(shape)
		require.NoError(t, err, "shape %q", shape)
		assert.Equal(t, "254712345678", got, "shape %q", shape)
	}
}
