package cmd

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(arg string) (int64, error) {
	return strconv.ParseInt(arg, 10, 64)
}

func orDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

// relDate renders a YYYY-MM-DD date as "3 weeks ago".
func relDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return humanize.Time(t)
}
