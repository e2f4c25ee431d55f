package domain

var (
	MessageSuccessUploadAsset = "asset uploaded successfully"
	MessageFailedUploadAsset  = "failed to upload asset"

	ErrAssetTypeNotAllowed  = NewRuleError(ErrInvalidInput, "only jpeg, png and webp images are accepted")
	ErrAssetStorageDisabled = NewRuleError(ErrStoreUnavailable, "asset storage is not configured")
)

type AssetResponse struct {
	AssetsURL string `json:"assets_url"`
}
