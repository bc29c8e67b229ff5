package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tracker/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerateServer 模拟外部文本生成接口
func fakeGenerateServer(status int, body string, capture *[]byte) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			data, _ := io.ReadAll(r.Body)
			*capture = data
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func testAIConfig(apiURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		AI: config.AIConfig{
			APIURL:  apiURL,
			Timeout: 5 * time.Second,
		},
	}
}

func TestInsightHandler_Insights(t *testing.T) {
	upstream := `{"candidates":[{"content":{"parts":[{"text":"You spend too much on food."}]}}]}`
	var captured []byte
	ts := fakeGenerateServer(200, upstream, &captured)
	defer ts.Close()

	router := gin.New()
	router.POST("/llm/insights", NewInsightHandler(testAIConfig(ts.URL)).Insights)

	body := `{"transactions":[{"id":1,"title":"Groceries","amount":-52.3,"date":"2024-01-06T00:00:00Z","category":"Food"}]}`
	req := httptest.NewRequest("POST", "/llm/insights", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "You spend too much on food.", resp["text"])

	// 提示词中包含序列化后的记录和系统指令
	assert.Contains(t, string(captured), "Act as a personal financial advisor")
	assert.Contains(t, string(captured), "Groceries")
	assert.Contains(t, string(captured), "You are a friendly financial advisor.")
}

func TestInsightHandler_Insights_UpstreamError(t *testing.T) {
	ts := fakeGenerateServer(500, `{"error":"boom"}`, nil)
	defer ts.Close()

	router := gin.New()
	router.POST("/llm/insights", NewInsightHandler(testAIConfig(ts.URL)).Insights)

	body := `{"transactions":[]}`
	req := httptest.NewRequest("POST", "/llm/insights", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 500, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to generate insights", resp["error"])
}

func TestInsightHandler_Insights_EmptyCandidates(t *testing.T) {
	// 上游 200 但缺少文本路径，返回空文本而不是错误
	ts := fakeGenerateServer(200, `{"candidates":[]}`, nil)
	defer ts.Close()

	router := gin.New()
	router.POST("/llm/insights", NewInsightHandler(testAIConfig(ts.URL)).Insights)

	body := `{"transactions":[]}`
	req := httptest.NewRequest("POST", "/llm/insights", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "", resp["text"])
}

func TestInsightHandler_Goals(t *testing.T) {
	upstream := `{"candidates":[{"content":{"parts":[{"text":"Save $100 a month."}]}}]}`
	var captured []byte
	ts := fakeGenerateServer(200, upstream, &captured)
	defer ts.Close()

	router := gin.New()
	router.POST("/llm/goals", NewInsightHandler(testAIConfig(ts.URL)).Goals)

	body := `{"income":1500,"expenses":-200}`
	req := httptest.NewRequest("POST", "/llm/goals", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Save $100 a month.", resp["text"])

	// 支出取绝对值后填入提示词
	assert.Contains(t, string(captured), "$1500.00 and expenses $200.00")
	assert.Contains(t, string(captured), "You are a helpful financial coach.")
}

func TestInsightHandler_Goals_MissingFields(t *testing.T) {
	router := gin.New()
	router.POST("/llm/goals", NewInsightHandler(testAIConfig("http://unused")).Goals)

	body := `{"income":1500}`
	req := httptest.NewRequest("POST", "/llm/goals", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestInsightHandler_Goals_UpstreamError(t *testing.T) {
	ts := fakeGenerateServer(503, `unavailable`, nil)
	defer ts.Close()

	router := gin.New()
	router.POST("/llm/goals", NewInsightHandler(testAIConfig(ts.URL)).Goals)

	body := `{"income":1500,"expenses":-200}`
	req := httptest.NewRequest("POST", "/llm/goals", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 500, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Failed to generate a financial goal", resp["error"])
}
