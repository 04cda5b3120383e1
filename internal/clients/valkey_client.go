package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"
)

var (
	valkeyInstance *ValkeyClient
	valkeyOnce     sync.Once
)

// ValkeyClient persists agent profile documents between process runs.
// Profiles live under texture:profile:<agent>.
type ValkeyClient struct {
	client valkey.Client
	mu     sync.Mutex
}

const profileKeyPrefix = "texture:profile:"

// ValkeyConfigured reports whether a valkey address is set; profile
// persistence is optional and off without one.
func ValkeyConfigured() bool {
	return os.Getenv("VALKEY_INIT_ADDRESS") != ""
}

func InitValkey() (*ValkeyClient, error) {
	var initErr error
	valkeyOnce.Do(func() {
		client, err := newValkeyClient()
		if err != nil {
			initErr = err
			return
		}
		valkeyInstance = &ValkeyClient{client: client}
	})
	if initErr != nil {
		return nil, initErr
	}
	if valkeyInstance == nil {
		return nil, fmt.Errorf("[ValkeyClient] client is not initialized")
	}
	return valkeyInstance, nil
}

func newValkeyClient() (valkey.Client, error) {
	opts := valkey.ClientOption{
		InitAddress:      []string{os.Getenv("VALKEY_INIT_ADDRESS")},
		Password:         os.Getenv("VALKEY_PASSWORD"),
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}
	if os.Getenv("VALKEY_TLS") == "true" {
		opts.TLSConfig = &tls.Config{}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to create client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyClient] failed to ping: %w", err)
	}

	slog.Info("[ValkeyClient] Successfully connected to valkey")
	return client, nil
}

func CloseValkey() {
	if valkeyInstance != nil {
		valkeyInstance.client.Close()
	}
}

// SaveProfile stores a serialized profile document for the agent.
func (vc *ValkeyClient) SaveProfile(ctx context.Context, agentID string, doc []byte) error {
	cmd := vc.client.B().Set().Key(profileKeyPrefix + agentID).Value(string(doc)).Build()
	if err := vc.doWithRetry(ctx, cmd, 3).Error(); err != nil {
		return fmt.Errorf("[ValkeyClient] failed to save profile %q: %w", agentID, err)
	}

	slog.Info("[ValkeyClient] Profile saved",
		slog.String("agent", agentID))
	return nil
}

// LoadProfile fetches the agent's serialized profile document. A missing key
// returns (nil, nil); the caller decides whether that is an error.
func (vc *ValkeyClient) LoadProfile(ctx context.Context, agentID string) ([]byte, error) {
	res := vc.doWithRetry(ctx, vc.client.B().Get().Key(profileKeyPrefix+agentID).Build(), 3)
	if err := res.Error(); err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("[ValkeyClient] failed to load profile %q: %w", agentID, err)
	}

	doc, err := res.AsBytes()
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to read profile %q: %w", agentID, err)
	}
	return doc, nil
}

// ListProfileAgents returns the agent ids with a persisted profile.
func (vc *ValkeyClient) ListProfileAgents(ctx context.Context) ([]string, error) {
	res := vc.doWithRetry(ctx, vc.client.B().Keys().Pattern(profileKeyPrefix+"*").Build(), 3)
	keys, err := res.AsStrSlice()
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to list profiles: %w", err)
	}

	agents := make([]string, 0, len(keys))
	for _, key := range keys {
		agents = append(agents, strings.TrimPrefix(key, profileKeyPrefix))
	}
	return agents, nil
}

func (vc *ValkeyClient) doWithRetry(ctx context.Context, cmd valkey.Completed, retries int) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	for i := 0; i < retries; i++ {
		result = vc.client.Do(ctx, cmd)
		if result.Error() == nil || valkey.IsValkeyNil(result.Error()) {
			break
		}

		slog.Warn("[ValkeyClient] Do failed",
			slog.Int("attempt", i+1),
			slog.String("error", result.Error().Error()))

		time.Sleep(250 * time.Millisecond)
	}
	return result
}
