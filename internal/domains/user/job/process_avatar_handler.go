package job

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"

	"github.com/disintegration/imaging"
	"github.com/hibiken/asynq"

	"bookhub-backend/internal/domains/user"
	"bookhub-backend/internal/infrastructure/storage"
	"bookhub-backend/internal/shared"
	"bookhub-backend/pkg/logger"
)

// Avatars are resized to a square-ish thumbnail bounded by this width
const thumbnailWidth = 256

// ProcessAvatarHandler generates a thumbnail for an uploaded avatar
// and points the user's avatar URL at it.
type ProcessAvatarHandler struct {
	repo    user.Repository
	storage *storage.MinIOStorage
}

func NewProcessAvatarHandler(repo user.Repository, storage *storage.MinIOStorage) *ProcessAvatarHandler {
	return &ProcessAvatarHandler{
		repo:    repo,
		storage: storage,
	}
}

func (h *ProcessAvatarHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload shared.ProcessAvatarPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal avatar payload: %w", err)
	}

	original, err := h.storage.Download(ctx, payload.Key)
	if err != nil {
		return fmt.Errorf("download original avatar: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(original))
	if err != nil {
		// Undecodable uploads are dropped rather than retried
		logger.Warn().
			Err(err).
			Str("user_id", payload.UserID.String()).
			Msg("Avatar is not a decodable image, skipping thumbnail")
		return nil
	}

	// Height 0 preserves the aspect ratio
	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return fmt.Errorf("encode thumbnail: %w", err)
	}

	thumbKey := path.Join(path.Dir(payload.Key), "thumb.jpg")
	url, err := h.storage.Upload(ctx, thumbKey, buf.Bytes(), "image/jpeg")
	if err != nil {
		return fmt.Errorf("upload thumbnail: %w", err)
	}

	if err := h.repo.SetAvatarURL(ctx, payload.UserID, url); err != nil {
		return fmt.Errorf("update avatar url: %w", err)
	}

	logger.Info().
		Str("user_id", payload.UserID.String()).
		Str("key", thumbKey).
		Msg("Avatar thumbnail generated")

	return nil
}
