package rlog

import "testing"

func TestNoOp_ImplementsPrintf(t *testing.T) {
	var logger interface {
		Printf(string, ...interface{})
	} = NoOp{}
	logger.Printf("sample %d/%d", 1, 10)
}

func TestNew_ProducesUsableLogger(t *testing.T) {
	logger, err := New()
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	logger.Printf("render started: %dx%d", 400, 225)
	if err := logger.Sync(); err != nil {
		t.Logf("sync returned %v (harmless when stderr is not a regular file)", err)
	}
}
