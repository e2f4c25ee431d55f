// Package assets uploads product and recipe images to object storage and
// points the row's assets_url at the uploaded object.
package assets

import (
	"Groeneweide-Backend/domain"
	"Groeneweide-Backend/entities"
	"Groeneweide-Backend/internal/utils"
	"Groeneweide-Backend/internal/utils/storage"
	"Groeneweide-Backend/pkg/store"
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const entity = "asset"

type (
	AssetService interface {
		UploadProductAsset(ctx context.Context, productID uint, file *multipart.FileHeader) (*domain.AssetResponse, error)
		UploadRecipeAsset(ctx context.Context, recipeID uint, file *multipart.FileHeader) (*domain.AssetResponse, error)
	}

	assetService struct {
		gateway         store.Gateway
		assetRepository AssetRepository
		s3              storage.AwsS3
		logger          *zap.Logger
	}

	target struct {
		table     string
		keyColumn string
		folder    string
		notFound  error
	}
)

var (
	productTarget = target{entities.TableProducts, entities.ColProductID, "products", domain.ErrProductNotFound}
	recipeTarget  = target{entities.TableRecipes, entities.ColRecipeID, "recipes", domain.ErrRecipeNotFound}
)

// NewAssetService builds the service; a nil s3 disables uploads.
func NewAssetService(gateway store.Gateway, assetRepository AssetRepository, s3 storage.AwsS3, logger *zap.Logger) AssetService {
	return &assetService{
		gateway:         gateway,
		assetRepository: assetRepository,
		s3:              s3,
		logger:          logger,
	}
}

func (s *assetService) UploadProductAsset(ctx context.Context, productID uint, file *multipart.FileHeader) (*domain.AssetResponse, error) {
	return s.upload(ctx, productTarget, productID, file)
}

func (s *assetService) UploadRecipeAsset(ctx context.Context, recipeID uint, file *multipart.FileHeader) (*domain.AssetResponse, error) {
	return s.upload(ctx, recipeTarget, recipeID, file)
}

func (s *assetService) upload(ctx context.Context, t target, id uint, file *multipart.FileHeader) (res *domain.AssetResponse, err error) {
	ctx, span := utils.StartOperation(ctx, entity, "upload_"+t.folder)
	defer func() { utils.EndOperation(span, s.logger, entity, "upload_"+t.folder, err) }()

	if s.s3 == nil {
		return nil, domain.ErrAssetStorageDisabled
	}

	exists, err := s.gateway.Exists(ctx, t.table, t.keyColumn, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, t.notFound
	}
	previous, err := s.assetRepository.GetAssetsURL(ctx, t.table, t.keyColumn, id)
	if err != nil {
		return nil, err
	}

	// upload outside the transaction
	objectKey, err := s.s3.UploadFile(ctx, uuid.NewString(), file, t.folder, storage.AllowImage...)
	if err != nil {
		if errors.Is(err, storage.ErrFileTypeNotAllowed) {
			return nil, domain.ErrAssetTypeNotAllowed
		}
		return nil, fmt.Errorf("%w: upload asset: %v", domain.ErrStoreUnavailable, err)
	}
	link := s.s3.GetPublicLinkKey(objectKey)

	err = s.gateway.Transaction(ctx, func(ctx context.Context) error {
		rows, err := s.assetRepository.SetAssetsURL(ctx, t.table, t.keyColumn, id, link)
		if err != nil {
			return err
		}
		if rows == 0 {
			return t.notFound
		}
		return nil
	})
	if err != nil {
		s.removeObject(ctx, objectKey)
		return nil, err
	}

	if oldKey := s.s3.GetObjectKeyFromLink(previous); oldKey != "" && oldKey != objectKey {
		s.removeObject(ctx, oldKey)
	}
	return &domain.AssetResponse{AssetsURL: link}, nil
}

func (s *assetService) removeObject(ctx context.Context, objectKey string) {
	if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
		s.logger.Warn("failed to remove asset object", zap.String("key", objectKey), zap.Error(err))
	}
}
