package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapDefaults(t *testing.T) {
	w := Wrap(httptest.NewRecorder())

	assert.Equal(t, http.StatusOK, w.StatusCode())
	assert.Equal(t, 0, w.BytesWritten())
}

func TestWriteHeaderRecordsOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	w.WriteHeader(http.StatusNotFound)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusNotFound, w.StatusCode())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWriteCountsBytes(t *testing.T) {
	w := Wrap(httptest.NewRecorder())

	_, err := w.Write([]byte("hello "))
	require.NoError(t, err)
	_, err = w.Write([]byte("world"))
	require.NoError(t, err)

	assert.Equal(t, 11, w.BytesWritten())
	assert.Equal(t, http.StatusOK, w.StatusCode(), "implicit status should be 200")
}
