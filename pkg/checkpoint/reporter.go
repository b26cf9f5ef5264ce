// Package checkpoint persists the last processed block height to an external
// parameter store. It is an independent side channel: a failed write never
// affects indexing or event delivery.
package checkpoint

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"go.uber.org/zap"
)

// Blocks between checkpoint writes.
const reportEvery = 5

// ParameterPutter is the slice of the SSM client the reporter needs.
type ParameterPutter interface {
	PutParameter(ctx context.Context, params *ssm.PutParameterInput, optFns ...func(*ssm.Options)) (*ssm.PutParameterOutput, error)
}

// Reporter writes the last indexed block level to a named parameter-store
// key every fifth block.
type Reporter struct {
	client  ParameterPutter
	keyName string
	logger  *zap.Logger
}

// NewReporter wires a reporter to a parameter store client.
func NewReporter(client ParameterPutter, keyName string, logger *zap.Logger) *Reporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reporter{
		client:  client,
		keyName: keyName,
		logger:  logger,
	}
}

// NewReporterFromConfig builds a reporter backed by AWS SSM. Region comes
// from the standard AWS environment (AWS_REGION).
func NewReporterFromConfig(ctx context.Context, keyName string, logger *zap.Logger) (*Reporter, error) {
	if keyName == "" {
		return nil, fmt.Errorf("checkpoint key name is not set")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return NewReporter(ssm.NewFromConfig(awsCfg), keyName, logger), nil
}

// OnBlock records the block level if it falls on a checkpoint boundary.
// Write errors are logged and swallowed; the checkpoint is best effort.
func (r *Reporter) OnBlock(ctx context.Context, level uint64) {
	if level%reportEvery != 0 {
		return
	}

	r.logger.Info("update last block", zap.Uint64("level", level))

	_, err := r.client.PutParameter(ctx, &ssm.PutParameterInput{
		Name:      aws.String(r.keyName),
		Value:     aws.String(strconv.FormatUint(level, 10)),
		Type:      types.ParameterTypeString,
		Overwrite: aws.Bool(true),
	})
	if err != nil {
		r.logger.Error("failed to write last block checkpoint",
			zap.String("key", r.keyName),
			zap.Uint64("level", level),
			zap.Error(err),
		)
	}
}
