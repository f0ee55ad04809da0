package poker

import (
	"fmt"
	"math/bits"
)

// HandRank represents the strength of a made hand. Lower values are stronger.
//
// A rank is derived from a packed strength key: the hand type in the top
// nibble followed by up to five rank slots in significance order (quad rank
// then kicker, trips rank then pair, and so on). Slots hold rank+1, and 0 marks
// a phantom filler, so short rows compare below any real kicker.
type HandRank uint32

// HandType enumerates the categories of poker hands ordered from weakest to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

const (
	slotBits  = 4
	slotCount = 5
	typeShift = slotBits * slotCount
	maxKey    = uint32(StraightFlush)<<typeShift | (1<<typeShift - 1)
)

// WorstRank is weaker than every evaluated hand. Rows that are too short to
// evaluate report it.
const WorstRank = HandRank(maxKey)

// BestRank is the royal flush, the strongest possible rank.
var BestRank = rankFromKey(packKey(StraightFlush, Ace+1))

// MinEvalCards is the fewest real cards Evaluate will rank.
const MinEvalCards = 3

// Type returns the exact category of the hand.
func (hr HandRank) Type() HandType {
	if hr > WorstRank {
		return HighCard
	}
	key := hr.key()
	t := HandType(key >> typeShift)
	if t == StraightFlush && slot(key, 0) == Ace+1 {
		return RoyalFlush
	}
	return t
}

// PrimaryRank returns the rank (0-12) that defines the hand: the quad, trips
// or higher pair rank, the straight's high card, or the top card otherwise.
// It returns NoRank for WorstRank.
func (hr HandRank) PrimaryRank() uint8 {
	if hr >= WorstRank {
		return NoRank
	}
	s := slot(hr.key(), 0)
	if s == 0 {
		return NoRank
	}
	return s - 1
}

// Ranks returns the significant rank slots in order, omitting phantom fillers.
func (hr HandRank) Ranks() []uint8 {
	if hr >= WorstRank {
		return nil
	}
	key := hr.key()
	out := make([]uint8, 0, slotCount)
	for i := range slotCount {
		if s := slot(key, i); s > 0 {
			out = append(out, s-1)
		}
	}
	return out
}

func (hr HandRank) key() uint32 {
	return maxKey - uint32(hr)
}

func rankFromKey(key uint32) HandRank {
	return HandRank(maxKey - key)
}

func slot(key uint32, i int) uint8 {
	shift := typeShift - slotBits*(i+1)
	return uint8(key>>shift) & 0xF
}

// packKey builds a strength key from a type and rank slots (already rank+1).
func packKey(t HandType, slots ...uint8) uint32 {
	key := uint32(t) << typeShift
	for i, s := range slots {
		if i >= slotCount {
			break
		}
		key |= uint32(s) << (typeShift - slotBits*(i+1))
	}
	return key
}

// String returns a human-readable hand type.
func (t HandType) String() string {
	switch t {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// String returns a human-readable hand description, e.g. "Three of a Kind, 7s".
func (hr HandRank) String() string {
	if hr >= WorstRank {
		return "No Hand"
	}
	t := hr.Type()
	r := hr.PrimaryRank()
	switch t {
	case Pair:
		return "Pair of " + RankPlural(r)
	case ThreeOfAKind, FourOfAKind:
		return fmt.Sprintf("%s, %s", t, RankPlural(r))
	case TwoPair:
		return fmt.Sprintf("Two Pair, %s and %s", RankPlural(r), RankPlural(hr.Ranks()[1]))
	case FullHouse:
		return fmt.Sprintf("Full House, %s over %s", RankPlural(r), RankPlural(hr.Ranks()[1]))
	case HighCard, Straight, Flush, StraightFlush:
		return fmt.Sprintf("%s, %s high", t, RankString(r))
	default:
		return t.String()
	}
}

// RankPlural names a rank the way royalty tables do: "7s", "10s", "Qs".
func RankPlural(rank uint8) string {
	if rank == Ten {
		return "10s"
	}
	return RankString(rank) + "s"
}

// Evaluate ranks the real cards in h. Jokers are ignored; resolve them first.
// Hands with three or four cards are padded with phantom fillers ranked below
// the deuce that can never pair, make a straight or a flush. Hands with more
// than five cards rank their best five. Fewer than three cards give WorstRank.
func Evaluate(h Hand) HandRank {
	h = h.WithoutJokers()
	if h.CountCards() < MinEvalCards {
		return WorstRank
	}

	var suitMasks [4]uint16
	var rankMask uint16
	for suit := range uint8(4) {
		mask := h.GetSuitMask(suit)
		suitMasks[suit] = mask
		rankMask |= mask
	}

	return rankFromKey(keyFromMasks(suitMasks, rankMask))
}

func keyFromMasks(suitMasks [4]uint16, rankMask uint16) uint32 {
	var flushKey uint32
	for _, suitMask := range suitMasks {
		if bits.OnesCount16(suitMask) < 5 {
			continue
		}
		if high := straightHighMask(suitMask); high != noStraight {
			return packKey(StraightFlush, high+1)
		}
		key := packKey(Flush, topSlots(suitMask, 0, 5)...)
		if key > flushKey {
			flushKey = key
		}
	}

	s0, s1, s2, s3 := suitMasks[0], suitMasks[1], suitMasks[2], suitMasks[3]

	quadsMask := s0 & s1 & s2 & s3
	tripCandidates := (s0 & s1 & s2) | (s0 & s1 & s3) | (s0 & s2 & s3) | (s1 & s2 & s3)
	tripsMask := tripCandidates &^ quadsMask
	pairsMask := ((s0 & s1) | (s0 & s2) | (s0 & s3) | (s1 & s2) | (s1 & s3) | (s2 & s3)) &^ tripCandidates

	if quad := highestRank(quadsMask); quad >= 0 {
		return packKey(FourOfAKind, append([]uint8{uint8(quad) + 1}, topSlots(rankMask, 1<<quad, 1)...)...)
	}

	if trip := highestRank(tripsMask); trip >= 0 {
		pairCandidates := pairsMask | (tripsMask &^ (1 << trip))
		if pair := highestRank(pairCandidates); pair >= 0 {
			return packKey(FullHouse, uint8(trip)+1, uint8(pair)+1)
		}
	}

	if flushKey != 0 {
		return flushKey
	}

	if high := straightHighMask(rankMask); high != noStraight {
		return packKey(Straight, high+1)
	}

	if trip := highestRank(tripsMask); trip >= 0 {
		return packKey(ThreeOfAKind, append([]uint8{uint8(trip) + 1}, topSlots(rankMask, 1<<trip, 2)...)...)
	}

	if high := highestRank(pairsMask); high >= 0 {
		if low := highestRank(pairsMask &^ (1 << high)); low >= 0 {
			used := uint16(1<<high | 1<<low)
			return packKey(TwoPair, append([]uint8{uint8(high) + 1, uint8(low) + 1}, topSlots(rankMask, used, 1)...)...)
		}
		return packKey(Pair, append([]uint8{uint8(high) + 1}, topSlots(rankMask, 1<<high, 3)...)...)
	}

	return packKey(HighCard, topSlots(rankMask, 0, 5)...)
}

// highestRank returns the highest rank present in the bitmask (or -1 when empty).
func highestRank(mask uint16) int {
	if mask == 0 {
		return -1
	}
	return bits.Len16(mask) - 1
}

// topSlots returns the top n ranks of mask, excluding used, as rank+1 slots in
// descending order. Missing cards become phantom (0) slots.
func topSlots(mask, used uint16, n int) []uint8 {
	available := mask &^ used
	out := make([]uint8, n)
	for i := range n {
		if available == 0 {
			break
		}
		top := bits.Len16(available) - 1
		out[i] = uint8(top) + 1
		available &^= 1 << top
	}
	return out
}

const noStraight = 255

// straightHighMask returns the high-card rank of the best straight present in
// the mask, or noStraight. The wheel (A-2-3-4-5) is five high.
func straightHighMask(mask uint16) uint8 {
	const wheelMask = 0x100F // Ace + 2-3-4-5
	mask &= rankMask

	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		low := uint8(bits.Len16(seq) - 1)
		return low + 4
	}
	if mask&wheelMask == wheelMask {
		return Five
	}
	return noStraight
}

// CompareHands compares two hands and returns 1 if a wins, -1 if b wins, 0 for tie
func CompareHands(a, b HandRank) int {
	if a < b {
		return 1
	} else if a > b {
		return -1
	}
	return 0
}
