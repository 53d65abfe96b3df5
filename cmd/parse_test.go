package cmd

import (
	"testing"

	"khata/internal/model"
)

func TestParseExpense(t *testing.T) {
	g := model.Group{Members: []string{"Me", "Aman", "Priya"}}

	tx, err := parseExpense("Me:900:Me,Aman,Priya", g)
	if err != nil {
		t.Fatalf("parseExpense: %v", err)
	}
	if tx.PaidBy != "Me" || tx.Amount != 900 || len(tx.SplitWith) != 3 {
		t.Errorf("parsed = %+v", tx)
	}

	bad := []string{
		"Me:900",                // missing split list
		"Stranger:900:Me,Aman",  // unknown payer
		"Me:abc:Me,Aman",        // bad amount
		"Me:-50:Me,Aman",        // negative amount
		"Me:900:Stranger",       // unknown split member
		"Me:900:,",              // empty split list
	}
	for _, raw := range bad {
		if _, err := parseExpense(raw, g); err == nil {
			t.Errorf("parseExpense(%q) should fail", raw)
		}
	}
}

func TestParseSeries(t *testing.T) {
	series, err := parseSeries("120, 80,0,210")
	if err != nil {
		t.Fatalf("parseSeries: %v", err)
	}
	if len(series) != 4 || series[3] != 210 {
		t.Errorf("series = %v", series)
	}

	if _, err := parseSeries("120,abc"); err == nil {
		t.Error("bad value should fail")
	}

	series, err = parseSeries("")
	if err != nil || series != nil {
		t.Errorf("empty input = %v, %v; want nil, nil", series, err)
	}
}
