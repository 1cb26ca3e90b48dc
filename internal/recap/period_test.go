package recap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyUsesReportingZone(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	c := NewClassifier(jakarta)

	// 23:30 UTC on Jan 31 is already Feb 1 in Jakarta (UTC+7)
	period, err := c.Classify(time.Date(2025, time.January, 31, 23, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, Period{Year: 2025, Month: time.February}, period)

	// same instant, UTC classifier: still January
	period, err = NewClassifier(time.UTC).Classify(time.Date(2025, time.January, 31, 23, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, Period{Year: 2025, Month: time.January}, period)
}

func TestClassifySameBucketIffSameYearAndMonth(t *testing.T) {
	c := NewClassifier(time.UTC)

	a, err := c.Classify(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	b, err := c.Classify(time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	other, err := c.Classify(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.NotEqual(t, a, other)
}

func TestClassifyZeroTimestampIsAmbiguous(t *testing.T) {
	_, err := NewClassifier(nil).Classify(time.Time{})
	assert.ErrorIs(t, err, ErrAmbiguousPeriod)
}

func TestParseTimestamp(t *testing.T) {
	got, err := ParseTimestamp("2025-03-14T09:30:00+07:00")
	require.NoError(t, err)
	assert.Equal(t, 2025, got.Year())

	got, err = ParseTimestamp("1741918200")
	require.NoError(t, err)
	assert.Equal(t, int64(1741918200), got.Unix())

	_, err = ParseTimestamp("14/03/2025")
	assert.ErrorIs(t, err, ErrAmbiguousPeriod)
}
