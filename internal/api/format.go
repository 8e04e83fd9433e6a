package api

import (
	"fmt"
	"strconv"
	"time"

	"github.com/btcsuite/btcutil"
)

// FormatTimestamp renders Unix seconds as absolute UTC time plus a relative
// suffix, e.g. "2009-01-03 18:15:05 UTC (5d ago)".
func FormatTimestamp(ts int64) string {
	return formatTimestampAt(ts, time.Now())
}

func formatTimestampAt(ts int64, now time.Time) string {
	t := time.Unix(ts, 0).UTC()
	ago := now.Sub(t)

	var agoStr string
	switch {
	case ago < 0:
		agoStr = "in the future"
	case ago < time.Minute:
		agoStr = fmt.Sprintf("%ds ago", int(ago.Seconds()))
	case ago < time.Hour:
		agoStr = fmt.Sprintf("%dm ago", int(ago.Minutes()))
	case ago < 24*time.Hour:
		agoStr = fmt.Sprintf("%dh ago", int(ago.Hours()))
	default:
		agoStr = fmt.Sprintf("%dd ago", int(ago.Hours()/24))
	}

	return fmt.Sprintf("%s (%s)", t.Format("2006-01-02 15:04:05 UTC"), agoStr)
}

// FormatNumber adds thousand separators: 840000 -> "840,000", -1234 -> "-1,234".
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	sign := ""
	if n < 0 {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	var result []byte
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return sign + string(result)
}

// FormatSatoshi shows a satoshi amount together with its BTC value,
// e.g. 5000000000 -> "5,000,000,000 sat (50 BTC)".
func FormatSatoshi(sat int64) string {
	return fmt.Sprintf("%s sat (%s)", FormatNumber(sat), btcutil.Amount(sat).String())
}
