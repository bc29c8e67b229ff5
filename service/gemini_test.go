package service

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateText(t *testing.T) {
	var captured GenerateRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &captured))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"hello"}]}}]}`))
	}))
	defer ts.Close()

	text, err := GenerateText(ts.URL, "system prompt", "user prompt", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	require.Len(t, captured.Contents, 1)
	require.Len(t, captured.Contents[0].Parts, 1)
	assert.Equal(t, "user prompt", captured.Contents[0].Parts[0].Text)
	require.NotNil(t, captured.SystemInstruction)
	assert.Equal(t, "system prompt", captured.SystemInstruction.Parts[0].Text)
}

func TestGenerateText_NoSystemInstruction(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		// 未提供系统指令时不应出现在请求体中
		assert.NotContains(t, string(data), "systemInstruction")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
	}))
	defer ts.Close()

	text, err := GenerateText(ts.URL, "", "prompt", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestGenerateText_EmptyURL(t *testing.T) {
	_, err := GenerateText("", "", "prompt", 5*time.Second)
	assert.Error(t, err)
}

func TestGenerateText_UpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(429)
		w.Write([]byte(`{"error":"quota exceeded"}`))
	}))
	defer ts.Close()

	_, err := GenerateText(ts.URL, "", "prompt", 5*time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGenerateText_MissingTextPath(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[]}}]}`))
	}))
	defer ts.Close()

	text, err := GenerateText(ts.URL, "", "prompt", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "", text)
}
