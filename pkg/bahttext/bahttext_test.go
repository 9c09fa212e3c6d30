package bahttext

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"0", "ศูนย์บาทถ้วน"},
		{"1", "หนึ่งบาทถ้วน"},
		{"11", "สิบเอ็ดบาทถ้วน"},
		{"21", "ยี่สิบเอ็ดบาทถ้วน"},
		{"100", "หนึ่งร้อยบาทถ้วน"},
		{"111", "หนึ่งร้อยสิบเอ็ดบาทถ้วน"},
		{"936", "เก้าร้อยสามสิบหกบาทถ้วน"},
		{"1000000", "หนึ่งล้านบาทถ้วน"},
		{"2500000", "สองล้านห้าแสนบาทถ้วน"},
		{"10000000", "สิบล้านบาทถ้วน"},
		{"1000001", "หนึ่งล้านหนึ่งบาทถ้วน"},
		{"0.25", "ศูนย์บาทยี่สิบห้าสตางค์"},
		{"1.50", "หนึ่งบาทห้าสิบสตางค์"},
		{"963.75", "เก้าร้อยหกสิบสามบาทเจ็ดสิบห้าสตางค์"},
		{"-5", "ลบห้าบาทถ้วน"},
	}

	for _, tc := range cases {
		amount := decimal.RequireFromString(tc.amount)
		assert.Equal(t, tc.want, Words(amount), "amount %s", tc.amount)
	}
}

func TestWordsRoundsToSatang(t *testing.T) {
	assert.Equal(t, "หนึ่งบาทหนึ่งสตางค์", Words(decimal.RequireFromString("1.005")))
	assert.Equal(t, "สองบาทถ้วน", Words(decimal.RequireFromString("1.999")))
}
