package httpx

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"cryptostatus/internal/domain"

	"github.com/stretchr/testify/require"
)

type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func httpClientRT(rt http.RoundTripper) *http.Client {
	return &http.Client{Transport: rt, Timeout: 2 * time.Second}
}

func TestGetJSON_200Decodes(t *testing.T) {
	var seen *http.Request
	c := New(httpClientRT(rtFunc(func(r *http.Request) (*http.Response, error) {
		seen = r
		return &http.Response{StatusCode: 200, Body: io.NopCloser(strings.NewReader(`{"ok": true}`)), Header: make(http.Header), Request: r}, nil
	})))
	var out struct {
		OK bool `json:"ok"`
	}
	code, err := c.GetJSON(context.Background(), "http://example.com/x?a=1", &out)
	require.NoError(t, err)
	require.Equal(t, 200, code)
	require.True(t, out.OK)
	require.Equal(t, http.MethodGet, seen.Method)
	require.Equal(t, "application/json", seen.Header.Get("Accept"))
}

func TestGetJSON_NoRetryOn500(t *testing.T) {
	var calls int
	c := New(httpClientRT(rtFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		return &http.Response{StatusCode: 500, Body: io.NopCloser(strings.NewReader("err")), Header: make(http.Header), Request: r}, nil
	})))
	var out map[string]any
	code, err := c.GetJSON(context.Background(), "http://example.com", &out)
	require.NoError(t, err)
	require.Equal(t, 500, code)
	require.Nil(t, out)
	require.Equal(t, 1, calls)
}

func TestGetJSON_DecodeError(t *testing.T) {
	c := New(httpClientRT(rtFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: 200, Body: io.NopCloser(bytes.NewBufferString("{x")), Header: make(http.Header), Request: r}, nil
	})))
	var out map[string]any
	_, err := c.GetJSON(context.Background(), "http://example.com", &out)
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestGetJSON_TransportError(t *testing.T) {
	boom := errors.New("connection refused")
	c := New(httpClientRT(rtFunc(func(r *http.Request) (*http.Response, error) {
		return nil, boom
	})))
	var out map[string]any
	code, err := c.GetJSON(context.Background(), "http://example.com", &out)
	require.Error(t, err)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 0, code)
}
