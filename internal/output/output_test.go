package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/skrulling/unused-buddy-go/domain"
)

func sampleResult() *domain.ScanResult {
	return &domain.ScanResult{Findings: []domain.Finding{
		{ID: "uf:x", Kind: domain.KindUnreachableFile, File: "src/dead.ts", Reason: "unreachable_file", Confidence: 0.98, Fixable: true},
	}}
}

func TestPrintScanHumanMonoPreservesTagsAndLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintScan(&buf, sampleResult(), "human", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "[UF]") || !strings.Contains(out, "src/dead.ts") {
		t.Errorf("expected mono output to contain tag and file, got %q", out)
	}
	if !strings.Contains(out, "Summary UF=1 UE=0 UC=0 total=1") {
		t.Errorf("expected summary line, got %q", out)
	}
}

func TestPrintScanHumanEmptyFindings(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintScan(&buf, &domain.ScanResult{}, "human", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "No findings" {
		t.Errorf("expected 'No findings', got %q", buf.String())
	}
}

func TestPrintScanAIEmitsWireShape(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintScan(&buf, sampleResult(), "ai", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("expected valid JSON line, got error: %v, body: %s", err, buf.String())
	}
	if decoded["k"] != "uf" || decoded["f"] != "src/dead.ts" || decoded["x"].(float64) != 1 {
		t.Errorf("unexpected wire shape: %+v", decoded)
	}
}

func TestPrintRemoveSummaryAI(t *testing.T) {
	var buf bytes.Buffer
	sum := domain.RemoveSummary{Planned: 2, Removed: 1, SkippedRisky: 1, DryRun: false}
	if err := PrintRemoveSummary(&buf, sum, "ai", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("expected valid JSON, got %v", err)
	}
	if decoded["planned"].(float64) != 2 || decoded["removed"].(float64) != 1 {
		t.Errorf("unexpected summary shape: %+v", decoded)
	}
}
