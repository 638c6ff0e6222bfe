package optimizer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"protein-optimizer-service/internal/config"
	"protein-optimizer-service/internal/domain"
)

func testConfig(url string) *config.OptimizerConfig {
	return &config.OptimizerConfig{
		URL:     url,
		APIKey:  "test-key",
		Model:   "test-model",
		Timeout: 2 * time.Second,
	}
}

func TestClient_Generate(t *testing.T) {
	var gotBody chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": `{"optimizedSequence":"MRV"}`}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	out, err := c.Generate(context.Background(), domain.OptimizerRequest{
		SystemPrompt: "you are a protein engineer",
		UserPrompt:   "Optimize this protein sequence for stability: MKV",
	})
	assert.NoError(t, err)
	assert.Equal(t, `{"optimizedSequence":"MRV"}`, out)

	assert.Equal(t, "test-model", gotBody.Model)
	assert.Len(t, gotBody.Messages, 2)
	assert.Equal(t, "system", gotBody.Messages[0].Role)
	assert.Equal(t, "user", gotBody.Messages[1].Role)
	assert.Equal(t, 0.3, gotBody.Temperature)
	assert.Equal(t, 1000, gotBody.MaxTokens)
}

func TestClient_Generate_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	_, err := c.Generate(context.Background(), domain.OptimizerRequest{})
	assert.Error(t, err)
}

func TestClient_Generate_EmptyCompletion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	_, err := c.Generate(context.Background(), domain.OptimizerRequest{})
	assert.Error(t, err)
}

func TestClient_Generate_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	c := NewClient(testConfig(srv.URL))
	_, err := c.Generate(ctx, domain.OptimizerRequest{})
	assert.Error(t, err)
}
