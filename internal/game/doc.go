// Package game implements the rules of two-player Pineapple Open-Face
// Chinese Poker.
//
// The main type is Session, which sequences a single hand: both seats place
// five opening cards, then play four rounds of deal three, place two,
// discard one. Completed boards are settled by Compare.
//
// # Basic Usage
//
// Drive a hand through two deciders:
//
//	s := game.NewSession(randutil.New(42), [2]string{"alice", "bob"})
//	res, err := s.Play(ctx, [2]game.Decider{a, b})
//	if err == nil {
//	    fmt.Println(res.Points, res.Fantasyland)
//	}
//
// Or step through it directly, as an interactive front end would:
//
//	s.Start()
//	s.PlaceInitial(0, placements)
//	s.PlayPineapple(1, [2]game.Placement{...}, discard)
//
// Illegal decisions return an *IllegalMoveError and leave the session
// unchanged so the seat can retry.
//
// # Architecture
//
// Session delegates responsibilities to specialized components:
//   - Board: three rows of capacity 3, 5 and 5
//   - EvaluateRow: resolves jokers by exhaustive search over the standard cards
//   - RoyaltyTable: per-row bonus points
//   - Compare: fouling, row wins, scoop and royalties
//   - poker.Deck: 54 shuffled cards with explicit RNG injection
//
// Every component below Session is pure, so evaluation and scoring may run
// concurrently across boards.
package game
