// Package git fetches pattern corpus repositories with shallow anonymous
// clones.
package git

import (
	"context"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/hashicorp/go-hclog"

	"github.com/scanforge/scanforge/pkg/shared/config"
)

const defaultCloneTimeout = 5 * time.Minute

// Client wraps go-git with the application configuration and logger.
type Client struct {
	logger  hclog.Logger
	cfg     *config.Config
	timeout time.Duration
}

// NewClient creates a clone client.
func NewClient(cfg *config.Config, logger hclog.Logger) *Client {
	return &Client{
		logger:  logger,
		cfg:     cfg,
		timeout: defaultCloneTimeout,
	}
}

// CloneRepository clones cloneURL into targetFolder. An empty branch clones
// the remote default branch; otherwise only the named branch is fetched.
// Clones are shallow unless the configured depth says otherwise.
func (c *Client) CloneRepository(cloneURL, targetFolder, branch string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	options := &git.CloneOptions{
		URL:             cloneURL,
		Progress:        c.logger.StandardWriter(&hclog.StandardLoggerOptions{}),
		Depth:           config.SetThen(c.cfg.GitClient.Depth, 1),
		InsecureSkipTLS: config.GetBoolValue(c.cfg, "GitClient.InsecureTLS", false),
	}
	if branch != "" {
		options.ReferenceName = plumbing.NewBranchReferenceName(branch)
		options.SingleBranch = true
	}

	c.logger.Debug("starting repository fetch", "cloneURL", cloneURL, "branch", branch, "targetFolder", targetFolder)
	if _, err := git.PlainCloneContext(ctx, targetFolder, false, options); err != nil {
		c.logger.Error("error occurred during clone", "error", err, "targetFolder", targetFolder)
		return "", fmt.Errorf("error occurred during clone: %w", err)
	}

	c.logger.Info("repository fetch completed successfully", "cloneURL", cloneURL, "targetFolder", targetFolder)
	return targetFolder, nil
}
