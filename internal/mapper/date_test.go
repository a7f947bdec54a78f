package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophbook/pkg/api"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		want string
		date api.Date
	}{
		{name: "full date", date: api.Date{Year: 1990, Month: 5, Day: 7}, want: "1990-05-07"},
		{name: "no year", date: api.Date{Month: 12, Day: 25}, want: "--12-25"},
		{name: "no day", date: api.Date{Year: 1990, Month: 5}, want: "1990-05--"},
		{name: "only year", date: api.Date{Year: 2001}, want: "2001----"},
		{name: "short year is padded", date: api.Date{Year: 33, Month: 1, Day: 1}, want: "0033-01-01"},
		{name: "zero date", date: api.Date{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(tt.date))
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    api.Date
		wantErr bool
	}{
		{name: "full date", input: "1990-05-07", want: api.Date{Year: 1990, Month: 5, Day: 7}},
		{name: "no year", input: "--12-25", want: api.Date{Month: 12, Day: 25}},
		{name: "no day", input: "1990-05--", want: api.Date{Year: 1990, Month: 5}},
		{name: "only year", input: "2001----", want: api.Date{Year: 2001}},
		{name: "empty string", input: "", want: api.Date{}},
		{name: "garbage", input: "yesterday", wantErr: true},
		{name: "short year", input: "90-05-07", wantErr: true},
		{name: "missing separator", input: "19900507", wantErr: true},
		{name: "trailing characters", input: "1990-05-07T00", wantErr: true},
		{name: "month out of range", input: "1990-13-01", wantErr: true},
		{name: "day out of range", input: "1990-01-32", wantErr: true},
		{name: "truncated", input: "1990-05", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDate_RoundTrip(t *testing.T) {
	dates := []api.Date{
		{Year: 1985, Month: 10, Day: 26},
		{Month: 2, Day: 29},
		{Year: 2020, Month: 1},
		{Year: 1999},
		{Day: 3},
	}
	for _, d := range dates {
		got, err := ParseDate(FormatDate(d))
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
}
