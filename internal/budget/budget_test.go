package budget

import (
	"sync"
	"testing"

	"github.com/airisdev/airis-agent/internal/confidence"
)

// TestForComplexityTotal verifies the allocation map is total over the
// three recognized complexity levels.
func TestForComplexityTotal(t *testing.T) {
	tests := []struct {
		complexity confidence.Complexity
		want       int
	}{
		{confidence.ComplexitySimple, 200},
		{confidence.ComplexityMedium, 1000},
		{confidence.ComplexityComplex, 2500},
	}

	for _, tt := range tests {
		got, err := ForComplexity(tt.complexity)
		if err != nil {
			t.Errorf("ForComplexity(%q) error = %v", tt.complexity, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ForComplexity(%q) = %d, want %d", tt.complexity, got, tt.want)
		}
	}
}

func TestForComplexityDefaultsToMedium(t *testing.T) {
	got, err := ForComplexity("")
	if err != nil {
		t.Fatalf("ForComplexity(\"\") error = %v", err)
	}
	if got != TokensMedium {
		t.Errorf("ForComplexity(\"\") = %d, want %d", got, TokensMedium)
	}
}

func TestForComplexityUnknown(t *testing.T) {
	if _, err := ForComplexity("epic"); err == nil {
		t.Error("ForComplexity(\"epic\") = nil error, want failure")
	}
}

func TestTableOrdering(t *testing.T) {
	table := Table()
	if len(table) != 3 {
		t.Fatalf("Table() length = %d, want 3", len(table))
	}
	for i := 1; i < len(table); i++ {
		if table[i].Tokens <= table[i-1].Tokens {
			t.Errorf("Table() not in ascending budget order: %+v", table)
		}
	}
}

func TestTrackerRecord(t *testing.T) {
	tracker := NewTracker()

	tokens, err := tracker.Record(confidence.ComplexityComplex)
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	if tokens != TokensComplex {
		t.Errorf("Record() tokens = %d, want %d", tokens, TokensComplex)
	}

	if _, err := tracker.Record(""); err != nil {
		t.Fatalf("Record(\"\") error = %v", err)
	}

	usage := tracker.Snapshot()
	if usage.Checks != 2 {
		t.Errorf("Checks = %d, want 2", usage.Checks)
	}
	if usage.TokensGranted != TokensComplex+TokensMedium {
		t.Errorf("TokensGranted = %d, want %d", usage.TokensGranted, TokensComplex+TokensMedium)
	}
	if usage.ByComplexity[confidence.ComplexityMedium] != 1 {
		t.Errorf("ByComplexity[medium] = %d, want 1 (empty complexity defaults to medium)",
			usage.ByComplexity[confidence.ComplexityMedium])
	}
}

func TestTrackerRecordUnknownComplexity(t *testing.T) {
	tracker := NewTracker()
	if _, err := tracker.Record("huge"); err == nil {
		t.Error("Record(\"huge\") = nil error, want failure")
	}
	if usage := tracker.Snapshot(); usage.Checks != 0 {
		t.Errorf("Checks = %d after failed record, want 0", usage.Checks)
	}
}

// TestTrackerConcurrentRecord exercises the tracker from many goroutines.
func TestTrackerConcurrentRecord(t *testing.T) {
	tracker := NewTracker()

	const goroutines = 16
	const perGoroutine = 25

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				if _, err := tracker.Record(confidence.ComplexitySimple); err != nil {
					t.Errorf("Record() error = %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	usage := tracker.Snapshot()
	if usage.Checks != goroutines*perGoroutine {
		t.Errorf("Checks = %d, want %d", usage.Checks, goroutines*perGoroutine)
	}
	if usage.TokensGranted != int64(goroutines*perGoroutine*TokensSimple) {
		t.Errorf("TokensGranted = %d, want %d", usage.TokensGranted, goroutines*perGoroutine*TokensSimple)
	}
}
