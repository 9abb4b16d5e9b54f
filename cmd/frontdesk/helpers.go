// Shared helpers for frontdesk CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BhanuNama/entnt-dental-dashboard/pkg/types"
)

// Accepted date-time layouts for appointment flags, tried in order.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseDateTime parses a user-supplied date-time in the local time zone.
func parseDateTime(value string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (want e.g. 2025-01-30T14:00)", value)
}

// session returns the logged-in user or an actionable error.
func session() (*types.User, error) {
	u, err := clinic.CurrentSession()
	if err != nil {
		if errors.Is(err, types.ErrNoSession) {
			return nil, fmt.Errorf("not logged in; run 'frontdesk login' first")
		}
		return nil, err
	}
	return u, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// shortID truncates a UUID for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncate shortens s for table display.
func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}

// parseAttachment parses a --file flag value of the form name:url:type. The
// name is everything before the first colon and the type everything after
// the last, so data URLs with embedded colons work.
func parseAttachment(value string) (types.Attachment, error) {
	name, rest, ok := strings.Cut(value, ":")
	if !ok || name == "" {
		return types.Attachment{}, fmt.Errorf("invalid --file %q (want name:url:type)", value)
	}
	sep := strings.LastIndex(rest, ":")
	if sep <= 0 || sep == len(rest)-1 {
		return types.Attachment{}, fmt.Errorf("invalid --file %q (want name:url:type)", value)
	}
	return types.Attachment{Name: name, URL: rest[:sep], Type: rest[sep+1:]}, nil
}

// costDisplay renders an optional cost for table output.
func costDisplay(cost *float64) string {
	if cost == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *cost)
}
