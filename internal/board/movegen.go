package board

import . "github.com/hailam/chesshash/internal/chess"

// LegalMoves generates all legal moves for the position. A position whose
// variant has ended has none.
func (p *Position) LegalMoves() []Move {
	if p.IsVariantEnd() {
		return nil
	}
	var ml MoveList
	p.generateAllMoves(&ml)

	legal := make([]Move, 0, ml.Len())
	for _, m := range ml.Slice() {
		if p.isLegal(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// isLegal plays a pseudo-legal move on a copy and checks the mover's king.
func (p *Position) isLegal(m Move) bool {
	next := *p
	next.Play(m)
	return !next.kingAttacked(p.turn)
}

// generateAllMoves generates all pseudo-legal moves.
func (p *Position) generateAllMoves(ml *MoveList) {
	us := p.turn
	occupied := p.Occupied()
	targets := ^p.occupied[us]

	p.generatePawnMoves(ml, us, p.occupied[us.Other()], occupied)

	for role := Knight; role <= King; role++ {
		pieces := p.pieces[us][role]
		for pieces != 0 {
			from := pieces.PopLSB()
			var attacks Bitboard
			switch role {
			case Knight:
				attacks = KnightAttacks(from)
			case Bishop:
				attacks = BishopAttacks(from, occupied)
			case Rook:
				attacks = RookAttacks(from, occupied)
			case Queen:
				attacks = QueenAttacks(from, occupied)
			case King:
				attacks = KingAttacks(from)
			}
			attacks &= targets
			for attacks != 0 {
				ml.Add(NewMove(from, attacks.PopLSB()))
			}
		}
	}

	p.generateCastlingMoves(ml, us)
}

// generatePawnMoves generates all pawn moves.
func (p *Position) generatePawnMoves(ml *MoveList, us Color, enemies, occupied Bitboard) {
	pawns := p.pieces[us][Pawn]
	empty := ^occupied

	var push1, push2, attackL, attackR Bitboard
	var pushDir int

	if us == White {
		push1 = pawns.North() & empty
		push2 = (push1 & Rank3).North() & empty
		attackL = pawns.NorthWest() & enemies
		attackR = pawns.NorthEast() & enemies
		pushDir = 8
	} else {
		push1 = pawns.South() & empty
		push2 = (push1 & Rank6).South() & empty
		attackL = pawns.SouthWest() & enemies
		attackR = pawns.SouthEast() & enemies
		pushDir = -8
	}

	addPawnMoves(ml, push1, pushDir)
	for push2 != 0 {
		to := push2.PopLSB()
		ml.Add(NewMove(Square(int(to)-2*pushDir), to))
	}
	addPawnMoves(ml, attackL, pushDir-1)
	addPawnMoves(ml, attackR, pushDir+1)

	if p.epSquare != NoSquare {
		attackers := PawnAttacks(us.Other(), p.epSquare) & pawns
		for attackers != 0 {
			ml.Add(NewEnPassant(attackers.PopLSB(), p.epSquare))
		}
	}
}

// addPawnMoves adds a move for every target, expanding moves onto the last
// rank into the four promotions. delta is to minus from.
func addPawnMoves(ml *MoveList, targets Bitboard, delta int) {
	for targets != 0 {
		to := targets.PopLSB()
		from := Square(int(to) - delta)
		if r := to.Rank(); r == 0 || r == 7 {
			for promo := Queen; promo >= Knight; promo-- {
				ml.Add(NewPromotion(from, to, promo))
			}
			continue
		}
		ml.Add(NewMove(from, to))
	}
}

// generateCastlingMoves generates castling moves. The king may not start
// in, pass through or land on an attacked square.
func (p *Position) generateCastlingMoves(ml *MoveList, us Color) {
	them := us.Other()
	king := E1
	if us == Black {
		king = E8
	}
	if p.pieces[us][King]&SquareBB(king) == 0 || p.IsSquareAttacked(king, them) {
		return
	}
	occupied := p.Occupied()

	for _, side := range []CastlingSide{KingSide, QueenSide} {
		if !p.castling.Has(us, side) {
			continue
		}
		rook := side.RookSquare(us)
		if p.pieces[us][Rook]&SquareBB(rook) == 0 {
			continue
		}
		var path Bitboard
		var through, to Square
		if side == KingSide {
			path = SquareBB(king+1) | SquareBB(king+2)
			through, to = king+1, king+2
		} else {
			path = SquareBB(king-1) | SquareBB(king-2) | SquareBB(king-3)
			through, to = king-1, king-2
		}
		if occupied&path != 0 {
			continue
		}
		if p.IsSquareAttacked(through, them) || p.IsSquareAttacked(to, them) {
			continue
		}
		ml.Add(NewCastling(king, to))
	}
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (p *Position) HasLegalMoves() bool {
	return len(p.LegalMoves()) > 0
}

// IsCheckmate returns true if the side to move is checkmated.
func (p *Position) IsCheckmate() bool {
	return p.InCheck() && !p.HasLegalMoves()
}

// IsStalemate returns true if the side to move has no moves but is not in check.
func (p *Position) IsStalemate() bool {
	return !p.InCheck() && !p.HasLegalMoves()
}
