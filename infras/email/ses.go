package email

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/rs/zerolog/log"
)

type SESSender struct {
	client    *sesv2.Client
	fromEmail string
	fromName  string
}

func NewSESSender(client *sesv2.Client, fromEmail, fromName string) *SESSender {
	return &SESSender{
		client:    client,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// newSESClient uses static keys when given and the default AWS credential chain otherwise.
func newSESClient(region, accessKeyID, secretAccessKey string) *sesv2.Client {
	opts := []func(*awsConfig.LoadOptions) error{}

	if region != "" {
		opts = append(opts, awsConfig.WithRegion(region))
	}

	if accessKeyID != "" && secretAccessKey != "" {
		opts = append(opts, awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, ""),
		))
	}

	cfg, err := awsConfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		log.Error().Err(err).Msg("Error loading AWS configuration for SES")

		return nil
	}

	return sesv2.NewFromConfig(cfg)
}

func (s *SESSender) Send(ctx context.Context, msg Message) (string, error) {
	content := func(data string) *types.Content {
		return &types.Content{Data: aws.String(data), Charset: aws.String(charsetUTF8)}
	}

	body := &types.Body{}
	if msg.HTML != "" {
		body.Html = content(msg.HTML)
	}

	if msg.Text != "" {
		body.Text = content(msg.Text)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: content(msg.Subject),
				Body:    body,
			},
		},
	}

	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []string{msg.ReplyTo}
	}

	output, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return "", fmt.Errorf("ses send failed: %w", err)
	}

	return aws.ToString(output.MessageId), nil
}
