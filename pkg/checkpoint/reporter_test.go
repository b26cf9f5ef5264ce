package checkpoint

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	inputs []*ssm.PutParameterInput
	err    error
}

func (f *fakePutter) PutParameter(_ context.Context, params *ssm.PutParameterInput, _ ...func(*ssm.Options)) (*ssm.PutParameterOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &ssm.PutParameterOutput{}, nil
}

func TestReporterWritesOnBoundary(t *testing.T) {
	putter := &fakePutter{}
	reporter := NewReporter(putter, "tezos_last_stop_block", nil)

	reporter.OnBlock(context.Background(), 100)

	require.Len(t, putter.inputs, 1)
	input := putter.inputs[0]
	assert.Equal(t, "tezos_last_stop_block", *input.Name)
	assert.Equal(t, "100", *input.Value)
	assert.Equal(t, types.ParameterTypeString, input.Type)
	require.NotNil(t, input.Overwrite)
	assert.True(t, *input.Overwrite)
}

func TestReporterSkipsOffBoundaryBlocks(t *testing.T) {
	putter := &fakePutter{}
	reporter := NewReporter(putter, "tezos_last_stop_block", nil)

	for _, level := range []uint64{1, 2, 3, 4, 6, 7, 99} {
		reporter.OnBlock(context.Background(), level)
	}
	assert.Empty(t, putter.inputs)

	reporter.OnBlock(context.Background(), 5)
	assert.Len(t, putter.inputs, 1)
}

func TestReporterSwallowsWriteErrors(t *testing.T) {
	putter := &fakePutter{err: errors.New("parameter store unavailable")}
	reporter := NewReporter(putter, "tezos_last_stop_block", nil)

	// Must not panic or propagate; the checkpoint is best effort.
	reporter.OnBlock(context.Background(), 10)
	assert.Len(t, putter.inputs, 1)
}

func TestNewReporterFromConfigRequiresKey(t *testing.T) {
	_, err := NewReporterFromConfig(context.Background(), "", nil)
	assert.Error(t, err)
}
