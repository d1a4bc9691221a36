package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWrapRecordsStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	w.WriteHeader(http.StatusNotFound)
	if _, err := w.Write([]byte(`{"error":"post not found"}`)); err != nil {
		t.Fatal(err)
	}

	if w.StatusCode() != http.StatusNotFound {
		t.Errorf("StatusCode() = %d, want 404", w.StatusCode())
	}
	if w.BytesWritten() != 26 {
		t.Errorf("BytesWritten() = %d, want 26", w.BytesWritten())
	}
}

func TestWrapDefaultsTo200(t *testing.T) {
	w := Wrap(httptest.NewRecorder())
	if _, err := w.Write([]byte("ok")); err != nil {
		t.Fatal(err)
	}
	if w.StatusCode() != http.StatusOK {
		t.Errorf("StatusCode() = %d, want implicit 200", w.StatusCode())
	}
}

func TestWrapIgnoresSecondWriteHeader(t *testing.T) {
	w := Wrap(httptest.NewRecorder())
	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	if w.StatusCode() != http.StatusCreated {
		t.Errorf("StatusCode() = %d, want the first code to stick", w.StatusCode())
	}
}
