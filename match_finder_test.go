package lzokay

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestFinder(src []byte, level int) *matchFinder {
	m := &matchFinder{}
	m.reset(src, levelParams(level))
	return m
}

func indexUpTo(m *matchFinder, end int) {
	for pos := range end {
		m.insert(pos)
	}
}

func TestMatchFinder_FindsLongestClosest(t *testing.T) {
	src := []byte("abcdXabcdeYabcdeZabcde")
	m := newTestFinder(src, 9)
	indexUpTo(m, 17)

	// "abcde" occurs at 5 and 11; the closer one wins the tie.
	length, dist := m.find(17)
	require.Equal(t, 5, length)
	require.Equal(t, 6, dist)
}

func TestMatchFinder_StopsAtEndOfInput(t *testing.T) {
	src := bytes.Repeat([]byte{'a'}, 40)
	m := newTestFinder(src, 9)
	indexUpTo(m, 10)

	length, dist := m.find(10)
	require.Equal(t, 30, length)
	require.Equal(t, 1, dist)
}

func TestMatchFinder_TwoByteMatchOnlyWithinM1Range(t *testing.T) {
	near := append([]byte("xy"), distinctBytes(100)...)
	near = append(near, 'x', 'y')
	m := newTestFinder(near, 9)
	indexUpTo(m, len(near)-2)

	length, dist := m.find(len(near) - 2)
	require.Equal(t, 2, length)
	require.Equal(t, len(near)-2, dist)

	far := append([]byte("xy"), randomBytes(4, maxOffsetM1+10)...)
	far = append(far, 'x', 'y')
	// Keep "xy" out of the filler so only the first occurrence can match.
	for i := 2; i < len(far)-3; i++ {
		if far[i] == 'x' && far[i+1] == 'y' {
			far[i+1] = 'z'
		}
	}

	m = newTestFinder(far, 9)
	indexUpTo(m, len(far)-2)

	length, _ = m.find(len(far) - 2)
	require.Zero(t, length)
}

func TestMatchFinder_IgnoresBeyondMaxDistance(t *testing.T) {
	block := []byte("0123456789")
	filler := bytes.Repeat([]byte{0xEE}, maxOffsetM4)
	src := append(append(append([]byte{}, block...), filler...), block...)

	m := newTestFinder(src, 9)
	indexUpTo(m, len(src)-len(block))

	length, _ := m.find(len(src) - len(block))
	require.Zero(t, length)
}

func TestMatchFinder_BestOffTracksClosestPerLength(t *testing.T) {
	// "abcdef" far back, "abc" close by; the current position reads "abcdef".
	src := []byte("abcdef")
	src = append(src, bytes.Repeat([]byte{'.'}, 3000)...)
	src = append(src, []byte("abcX")...)
	src = append(src, []byte("abcdef")...)
	pos := len(src) - 6

	m := newTestFinder(src, 9)
	indexUpTo(m, pos)

	length, dist := m.find(pos)
	require.Equal(t, 6, length)
	require.Equal(t, pos, dist)
	require.Equal(t, 4, m.bestOffAt(3))
	require.Equal(t, pos, m.bestOffAt(4))
	require.Zero(t, m.bestOffAt(bestOffCount))
}

func TestMatchFinder_AdjustForOffsetClass(t *testing.T) {
	m := &matchFinder{trackBestOff: true}

	m.bestOff[3] = 100
	length, dist := m.adjustForOffsetClass(4, 3000)
	require.Equal(t, 3, length)
	require.Equal(t, 100, dist)

	// A close match of the shorter length in M3 range turns an extended M4 into M3.
	clear(m.bestOff[:])
	m.bestOff[11] = 0x3000
	length, dist = m.adjustForOffsetClass(12, 0x5000)
	require.Equal(t, 11, length)
	require.Equal(t, 0x3000, dist)

	clear(m.bestOff[:])
	m.bestOff[maxLenM2] = 0x500
	length, dist = m.adjustForOffsetClass(maxLenM2+2, 0x5000)
	require.Equal(t, maxLenM2, length)
	require.Equal(t, 0x500, dist)

	// Close matches are left alone.
	length, dist = m.adjustForOffsetClass(5, 0x200)
	require.Equal(t, 5, length)
	require.Equal(t, 0x200, dist)

	m.trackBestOff = false
	length, dist = m.adjustForOffsetClass(12, 0x5000)
	require.Equal(t, 12, length)
	require.Equal(t, 0x5000, dist)
}

func TestMatchFinder_RebaseKeepsMatchesValid(t *testing.T) {
	src := bytes.Repeat([]byte("rebase-me-"), 100)
	m := newTestFinder(src, 9)
	m.prev = m.prev[:64]

	for pos := 0; pos < len(src)-1; pos++ {
		length, dist := m.find(pos)
		if length > 0 {
			require.Positive(t, dist)
			require.LessOrEqual(t, dist, pos)
			require.Equal(t, src[pos-dist:pos-dist+length], src[pos:pos+length])
		}
		m.insert(pos)
	}

	require.Positive(t, m.base)
}

func TestMatchLength(t *testing.T) {
	src := []byte("0123456789abcdef0123456789abcdeX")
	require.Equal(t, 15, matchLength(src, 0, 16, 16))
	require.Equal(t, 4, matchLength(src, 0, 16, 4))
	require.Zero(t, matchLength(src, 1, 16, 16))
}

func TestMatchFinderPool_ReusesAndResets(t *testing.T) {
	first := []byte("pool-pool-pool-pool")
	m := acquireMatchFinder(first, levelParams(5))
	indexUpTo(m, len(first))
	releaseMatchFinder(m)

	second := []byte("another input")
	m = acquireMatchFinder(second, levelParams(5))
	defer releaseMatchFinder(m)

	require.Equal(t, 0, m.base)
	require.Len(t, m.prev, len(second))
	for pos := range len(second) - 2 {
		length, _ := m.find(pos)
		require.Zero(t, length, "stale entries leaked from a previous run at %d", pos)
		m.insert(pos)
	}
}
