package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/errgroup"

	"github.com/kollekbot/kollek/kollek/gacha"
)

// ImageResolver turns a catalog card into a public image URL for
// embeds. The catalog only stores the image file name; where that file
// is served from is a deployment concern.
type ImageResolver interface {
	CardImageURL(card gacha.Card) string
}

// LocalImageResolver serves card art from the bot's own web server.
type LocalImageResolver struct {
	BaseURL string
}

func NewLocalImageResolver(baseURL string) *LocalImageResolver {
	return &LocalImageResolver{BaseURL: strings.TrimSuffix(baseURL, "/")}
}

func (r *LocalImageResolver) CardImageURL(card gacha.Card) string {
	return fmt.Sprintf("%s/cartes/%s", r.BaseURL, card.Image)
}

// SpacesService resolves card art hosted on a DigitalOcean Spaces
// bucket and can verify that an object actually exists before the URL
// is handed to an embed.
type SpacesService struct {
	client   *s3.Client
	bucket   string
	region   string
	cardRoot string
}

type SpacesConfig struct {
	Key      string `toml:"key"`
	Secret   string `toml:"secret"`
	Region   string `toml:"region"`
	Bucket   string `toml:"bucket"`
	CardRoot string `toml:"card_root"`
}

func NewSpacesService(cfg SpacesConfig) (*SpacesService, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.Key, cfg.Secret, "")),
		config.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load Spaces config: %w", err)
	}

	return &SpacesService{
		client:   s3.NewFromConfig(awsCfg),
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		cardRoot: strings.Trim(cfg.CardRoot, "/"),
	}, nil
}

func (s *SpacesService) CardImageURL(card gacha.Card) string {
	return fmt.Sprintf("https://%s.%s.cdn.digitaloceanspaces.com/%s/%s",
		s.bucket, s.region, s.cardRoot, card.Image)
}

// CardImageVerifier reports whether a card's image object is reachable.
type CardImageVerifier interface {
	VerifyCardImage(ctx context.Context, card gacha.Card) error
}

// VerifyCatalogImages checks every catalog card against the verifier,
// so a misconfigured bucket is caught at startup instead of surfacing
// as broken embeds.
func VerifyCatalogImages(ctx context.Context, v CardImageVerifier, cards []gacha.Card) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, card := range cards {
		g.Go(func() error {
			return v.VerifyCardImage(gctx, card)
		})
	}
	return g.Wait()
}

// VerifyCardImage checks that the image object exists in the bucket.
func (s *SpacesService) VerifyCardImage(ctx context.Context, card gacha.Card) error {
	key := fmt.Sprintf("%s/%s", s.cardRoot, card.Image)
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("card image %s not found in bucket %s: %w", key, s.bucket, err)
	}
	return nil
}
