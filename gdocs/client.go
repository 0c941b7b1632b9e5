package gdocs

import (
	"context"

	"github.com/Skuskusku13/app-google-auth/config"

	"google.golang.org/api/docs/v1"
	"google.golang.org/api/option"
)

const userAgent = "quill2gdocs-api/0.1.0"

type Client struct {
	Docs *docs.Service
}

// NewClient builds a Docs client from a previously stored OAuth token.
// It fails fast when no token is present instead of ever issuing
// unauthenticated requests; the interactive flow is only reachable
// through Authenticate.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	httpClient, err := oauthClientFromFiles(cfg.CredentialsPath, cfg.TokenPath)
	if err != nil {
		return nil, err
	}

	docsSvc, err := docs.NewService(ctx,
		option.WithHTTPClient(httpClient),
		option.WithUserAgent(userAgent),
	)
	if err != nil {
		return nil, err
	}

	return &Client{Docs: docsSvc}, nil
}
