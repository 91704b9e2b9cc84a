package booking

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDateDMY(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"5/3/2024", "2024-03-05"},
		{"05/03/2024", "2024-03-05"},
		{"5-3-2024", "2024-03-05"},
		{"31/12/2023", "2023-12-31"},
		{"abc", ""},
		{"5/3", ""},
		{"5/3/2024/9", ""},
		{"a/b/c", ""},
		{"", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ParseDateDMY(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeDate_KeepsRawOnFailure(t *testing.T) {
	require.Equal(t, "2024-03-05", NormalizeDate("5/3/2024"))
	require.Equal(t, "abc", NormalizeDate("abc"))
	require.Equal(t, "next tuesday", NormalizeDate("next tuesday"))
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"9:30", "09:30:00"},
		{"14:05", "14:05:00"},
		{"14:05:59", "14:05:00"},
		{"noonish", ""},
		{"", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ParseTime(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeTime_KeepsRawOnFailure(t *testing.T) {
	require.Equal(t, "09:30:00", NormalizeTime("9:30"))
	require.Equal(t, "noonish", NormalizeTime("noonish"))
}

func TestParseAmount(t *testing.T) {
	got := ParseAmount("$1,234.50")
	require.NotNil(t, got)
	require.InDelta(t, 1234.5, *got, 1e-9)

	got = ParseAmount("99")
	require.NotNil(t, got)
	require.InDelta(t, 99, *got, 1e-9)

	require.Nil(t, ParseAmount("free"))
	require.Nil(t, ParseAmount(""))
}

func TestAmount_UnmarshalStringOrNumber(t *testing.T) {
	var body struct {
		Fare *Amount `json:"fare"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"fare":"1,250 KWD"}`), &body))
	require.NotNil(t, body.Fare.Float())
	require.InDelta(t, 1250, *body.Fare.Float(), 1e-9)

	body.Fare = nil
	require.NoError(t, json.Unmarshal([]byte(`{"fare":99.5}`), &body))
	require.NotNil(t, body.Fare.Float())
	require.InDelta(t, 99.5, *body.Fare.Float(), 1e-9)

	body.Fare = nil
	require.NoError(t, json.Unmarshal([]byte(`{}`), &body))
	require.Nil(t, body.Fare.Float())
}

func TestOwnerID_AuthenticatedWins(t *testing.T) {
	auth := int64(7)
	body := int64(99)

	require.Equal(t, &auth, OwnerID(&auth, &body))
	require.Equal(t, &auth, OwnerID(&auth, nil))
	require.Equal(t, &body, OwnerID(nil, &body))
	require.Nil(t, OwnerID(nil, nil))
}

func TestNewReference_Format(t *testing.T) {
	ref := NewReference("JET")
	require.Regexp(t, regexp.MustCompile(`^JET-\d{13,}$`), ref)
}
