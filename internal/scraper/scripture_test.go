package scraper

import "testing"

func TestExtractScriptureRange(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"9월 8일~14일교리와 성약 98~101편 \"가만히 있어 내가 하나님인 줄 알라\"", "교리와 성약 98~101편"},
		{"교리와 성약 98-101편", "교리와 성약 98~101편"},
		{"교리와성약 76편", "교리와 성약 76편"},
		{"7월 7일~13일 D&C 76", "교리와 성약 76편"},
		{"D&C 98-101", "교리와 성약 98~101편"},
		{"98~101편", "교리와 성약 98~101편"},
		{"76편", "교리와 성약 76편"},
		{"몰몬경 앨마서 1~4장", "몰몬경 앨마서 1~4장"},
		{"신약전서 누가복음 2장", "신약전서 누가복음 2장"},
	}
	for _, c := range cases {
		if got := ExtractScriptureRange(c.text, 2025); got != c.want {
			t.Fatalf("ExtractScriptureRange(%q) = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestExtractScriptureRangeFallbackResidualText(t *testing.T) {
	got := ExtractScriptureRange("4월 14일~20일 부활절 특별 공과", 2025)
	if got != "부활절 특별 공과" {
		t.Fatalf("residual fallback: %q", got)
	}
}

func TestExtractScriptureRangeFallbackSynthesized(t *testing.T) {
	for _, text := range []string{"9월 8일~14일", "9월 8일 ~ 14일 ", ""} {
		if got := ExtractScriptureRange(text, 2025); got != "2025년 공과" {
			t.Fatalf("ExtractScriptureRange(%q) = %q, want synthesized year label", text, got)
		}
	}
}
