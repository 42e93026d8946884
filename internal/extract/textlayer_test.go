package extract

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner replays canned output per command name.
type stubRunner struct {
	outputs map[string][]byte
	errs    map[string]error
	calls   []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, name)
	if err, ok := s.errs[name]; ok && err != nil {
		return nil, []byte("boom"), err
	}
	return s.outputs[name], nil, nil
}

func TestTextLayerEngine_PDF(t *testing.T) {
	stub := &stubRunner{outputs: map[string][]byte{
		"pdftotext": []byte("first page text\fsecond page text\f"),
	}}
	e := NewTextLayerEngine(Config{}, nil)
	e.runner = stub

	res, err := e.Extract(context.Background(), []byte("%PDF-1.4"), "pdf")
	require.NoError(t, err)

	require.Len(t, res.Pages, 2)
	assert.Equal(t, 1, res.Pages[0].PageNumber)
	assert.Equal(t, "first page text", res.Pages[0].Text)
	assert.Equal(t, 2, res.Pages[1].PageNumber)
	assert.Equal(t, "second page text", res.Pages[1].Text)

	assert.Equal(t, "pdf-text", res.Metrics.Method)
	assert.Equal(t, 2, res.Metrics.TotalPages)
	assert.Equal(t, "first page text\n\nsecond page text", res.DocText)
	assert.Equal(t, len([]rune(res.DocText)), res.Metrics.CharCount)
	assert.Equal(t, []string{"pdftotext"}, stub.calls)
}

func TestTextLayerEngine_MaxPages(t *testing.T) {
	stub := &stubRunner{outputs: map[string][]byte{
		"pdftotext": []byte("p1\fp2\fp3\fp4\f"),
	}}
	e := NewTextLayerEngine(Config{MaxPages: 2}, nil)
	e.runner = stub

	res, err := e.Extract(context.Background(), []byte("%PDF-1.4"), "pdf")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Metrics.TotalPages)
}

func TestTextLayerEngine_TXTPassthrough(t *testing.T) {
	e := NewTextLayerEngine(Config{}, nil)
	e.runner = &stubRunner{} // must not be called

	res, err := e.Extract(context.Background(), []byte("plain content"), ".txt")
	require.NoError(t, err)

	require.Len(t, res.Pages, 1)
	assert.Equal(t, "plain content", res.Pages[0].Text)
	assert.Equal(t, "txt", res.Metrics.Method)
}

func TestTextLayerEngine_UnsupportedFormat(t *testing.T) {
	e := NewTextLayerEngine(Config{}, nil)
	e.runner = &stubRunner{}

	_, err := e.Extract(context.Background(), []byte{0x89, 0x50}, "png")
	assert.Error(t, err)
}

func TestTextLayerEngine_CommandFailure(t *testing.T) {
	cause := errors.New("exit status 1")
	stub := &stubRunner{errs: map[string]error{"pdftotext": cause}}
	e := NewTextLayerEngine(Config{}, nil)
	e.runner = stub

	_, err := e.Extract(context.Background(), []byte("%PDF-1.4"), "pdf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cause), fmt.Sprintf("want wrapped cause, got %v", err))
}

func TestHeuristicConfidence(t *testing.T) {
	assert.Equal(t, float32(0), heuristicConfidence("   "))

	// long, clean prose scores at the top
	prose := "The quarterly report covers revenue growth across all regional markets and includes detailed projections for the next fiscal year alongside a breakdown of operating costs per division"
	assert.InDelta(t, 0.9, float64(heuristicConfidence(prose)), 0.01)

	// line noise scores low
	noise := "~~ ## __ %% @@ !!"
	assert.Less(t, heuristicConfidence(noise), float32(0.5))
}
