package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	config "github.com/Biomedionics123/Biomedionics/configs"
	"github.com/Biomedionics123/Biomedionics/models"
)

// ChatMessage is one turn of the running sales-assistant conversation.
type ChatMessage struct {
	Role string `json:"role"` // user | model
	Text string `json:"text"`
}

type ChatRequest struct {
	Message string        `json:"message" binding:"required"`
	History []ChatMessage `json:"history"`
}

type assistantPayload struct {
	Model    string        `json:"model"`
	System   string        `json:"system"`
	Messages []ChatMessage `json:"messages"`
}

type assistantResponse struct {
	Text string `json:"text"`
}

// AskAssistant relays the visitor's message and conversation to the configured
// chat endpoint, grounding the system prompt in the current catalog. One
// attempt, no retry; callers degrade to a generic chat error.
func AskAssistant(db *gorm.DB, message string, history []ChatMessage) (string, error) {
	cfg := config.LoadAssistantConfig()
	if cfg.APIURL == "" {
		return "", fmt.Errorf("assistant endpoint is not configured")
	}

	var products []models.Product
	if err := db.Find(&products).Error; err != nil {
		return "", fmt.Errorf("failed to load catalog: %w", err)
	}
	system := "You are a helpful sales assistant for Biomedionics, a medical device vendor. Products:\n"
	for _, p := range products {
		system += fmt.Sprintf("- %s (%s): %s\n", p.Name, p.Category, p.Description)
	}

	payload := assistantPayload{
		Model:    cfg.Model,
		System:   system,
		Messages: append(append([]ChatMessage{}, history...), ChatMessage{Role: "user", Text: message}),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	req, err := http.NewRequest(http.MethodPost, cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.APIKey)
	}

	resp, err := client.Do(req)
	if err != nil {
		log.Printf("Assistant request failed: %v", err)
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Assistant API returned status %d", resp.StatusCode)
		return "", fmt.Errorf("chat API returned status %d", resp.StatusCode)
	}

	var out assistantResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}
	return out.Text, nil
}

// POST /assistant/chat
func ChatHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		text, err := AskAssistant(db, req.Message, req.History)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Sorry, something went wrong. Please try again."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"text": text})
	}
}
