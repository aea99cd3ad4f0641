package series

import (
	"sync"
	"testing"
	"time"

	"github.com/rxtech-lab/argo-signal/internal/types"
	"github.com/stretchr/testify/suite"
)

type BufferTestSuite struct {
	suite.Suite
}

func TestBufferTestSuite(t *testing.T) {
	suite.Run(t, new(BufferTestSuite))
}

func (s *BufferTestSuite) bar(symbol string, minute int, close float64) types.PriceBar {
	return types.PriceBar{
		Time:   time.Date(2024, 1, 1, 0, minute, 0, 0, time.UTC),
		Symbol: symbol,
		Open:   close - 1,
		High:   close + 1,
		Low:    close - 2,
		Close:  close,
		Volume: 1000,
	}
}

func (s *BufferTestSuite) closes(bars []types.PriceBar) []float64 {
	out := make([]float64, len(bars))
	for i, bar := range bars {
		out[i] = bar.Close
	}

	return out
}

func (s *BufferTestSuite) TestNewBuffer() {
	s.Equal(100, NewBuffer(100).Capacity())
	s.Equal(DefaultMaxBars, NewBuffer(0).Capacity())
	s.Equal(DefaultMaxBars, NewBuffer(-5).Capacity())
}

func (s *BufferTestSuite) TestAppendAndLen() {
	buf := NewBuffer(5)

	buf.Append(s.bar("SPY", 0, 100))
	buf.Append(s.bar("SPY", 1, 101))
	buf.Append(s.bar("AAPL", 0, 150))

	s.Equal(2, buf.Len("SPY"))
	s.Equal(1, buf.Len("AAPL"))
	s.Equal(0, buf.Len("QQQ"))
	s.Equal([]string{"AAPL", "SPY"}, buf.Symbols())
}

func (s *BufferTestSuite) TestEvictsOldest() {
	buf := NewBuffer(3)

	for i := 0; i < 6; i++ {
		buf.Append(s.bar("SPY", i, float64(100+i)))
	}

	s.Equal(3, buf.Len("SPY"))
	s.Equal([]float64{103, 104, 105}, s.closes(buf.Snapshot("SPY")))
}

func (s *BufferTestSuite) TestSameTimeReplaces() {
	buf := NewBuffer(5)

	buf.Append(s.bar("SPY", 0, 100))
	buf.Append(s.bar("SPY", 1, 101))
	buf.Append(s.bar("SPY", 1, 111))

	s.Equal([]float64{100, 111}, s.closes(buf.Snapshot("SPY")))
}

func (s *BufferTestSuite) TestOutOfOrderInsert() {
	buf := NewBuffer(5)

	buf.Append(s.bar("SPY", 0, 100))
	buf.Append(s.bar("SPY", 2, 102))
	buf.Append(s.bar("SPY", 1, 101))

	s.Equal([]float64{100, 101, 102}, s.closes(buf.Snapshot("SPY")))
}

func (s *BufferTestSuite) TestOutOfOrderInsertEvicts() {
	buf := NewBuffer(2)

	buf.Append(s.bar("SPY", 1, 101))
	buf.Append(s.bar("SPY", 3, 103))
	buf.Append(s.bar("SPY", 2, 102))

	s.Equal([]float64{102, 103}, s.closes(buf.Snapshot("SPY")))
}

func (s *BufferTestSuite) TestSnapshotIsCopy() {
	buf := NewBuffer(3)
	buf.AppendAll([]types.PriceBar{s.bar("SPY", 0, 100), s.bar("SPY", 1, 101)})

	snapshot := buf.Snapshot("SPY")
	snapshot[0].Close = -1

	buf.Append(s.bar("SPY", 2, 102))
	buf.Append(s.bar("SPY", 3, 103))

	s.Equal([]float64{-1, 101}, s.closes(snapshot))
	s.Equal([]float64{101, 102, 103}, s.closes(buf.Snapshot("SPY")))
}

func (s *BufferTestSuite) TestSnapshotUnknownSymbol() {
	snapshot := NewBuffer(3).Snapshot("SPY")
	s.NotNil(snapshot)
	s.Empty(snapshot)
}

func (s *BufferTestSuite) TestConcurrentAppendAndSnapshot() {
	buf := NewBuffer(50)

	var wg sync.WaitGroup

	wg.Add(2)

	go func() {
		defer wg.Done()

		for i := 0; i < 200; i++ {
			buf.Append(s.bar("SPY", i, float64(i)))
		}
	}()

	go func() {
		defer wg.Done()

		for i := 0; i < 200; i++ {
			snapshot := buf.Snapshot("SPY")
			s.LessOrEqual(len(snapshot), 50)
		}
	}()

	wg.Wait()

	snapshot := buf.Snapshot("SPY")
	s.Len(snapshot, 50)
	s.Equal(float64(150), snapshot[0].Close)
	s.Equal(float64(199), snapshot[49].Close)
}
