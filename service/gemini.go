package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Part 生成接口文本片段
type Part struct {
	Text string `json:"text"`
}

// Content 生成接口内容块
type Content struct {
	Parts []Part `json:"parts"`
}

// GenerateRequest 生成接口请求体
type GenerateRequest struct {
	Contents          []Content `json:"contents"`
	SystemInstruction *Content  `json:"systemInstruction,omitempty"`
}

// Candidate 生成接口候选结果
type Candidate struct {
	Content Content `json:"content"`
}

// GenerateResponse 生成接口响应体
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// GenerateText 调用外部文本生成接口，返回第一个候选结果的文本
// 单次请求，不重试；上游非 200 或网络错误均返回 error
// 响应中缺少文本路径时返回空串（不视为错误，由调用方原样透传）
func GenerateText(apiURL, system, prompt string, timeout time.Duration) (string, error) {
	if apiURL == "" {
		return "", fmt.Errorf("未配置生成接口地址")
	}

	reqBody := GenerateRequest{
		Contents: []Content{
			{Parts: []Part{{Text: prompt}}},
		},
	}
	if system != "" {
		reqBody.SystemInstruction = &Content{Parts: []Part{{Text: system}}}
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("构建请求失败: %w", err)
	}

	req, err := http.NewRequest("POST", apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("请求生成接口失败: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("读取响应失败: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("生成接口返回错误: %d, %s", resp.StatusCode, string(data))
	}

	var result GenerateResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("解析响应失败: %w", err)
	}

	// 取第一个候选结果的第一段文本，路径不存在时返回空串
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}
