package board

import (
	"fmt"
	"strconv"
	"strings"

	. "github.com/hailam/chesshash/internal/chess"
	"github.com/hailam/chesshash/internal/zobrist"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pocketOrder is the order pieces in hand are written in.
var pocketOrder = [...]Role{Queen, Rook, Bishop, Knight, Pawn}

// ParseFEN parses a standard chess FEN string and returns a Position.
func ParseFEN(fen string) (*Position, error) {
	return ParseVariantFEN(Standard, fen)
}

// ParseVariantFEN parses a FEN string for the given variant.
//
// Three-check positions take the remaining checks either as an extra field
// after the en passant square ("3+3") or as a trailing checks-given suffix
// ("+0+0"). Crazyhouse positions take pieces in hand in brackets after the
// placement ("[Qn]") or as a ninth placement row, and mark promoted pieces
// with a trailing '~'.
func ParseVariantFEN(v Variant, fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("invalid FEN: need at least 4 fields, got %d", len(parts))
	}

	pos := &Position{
		epSquare:  NoSquare,
		fullmoves: 1,
		variant:   v,
	}
	if v == ThreeCheck {
		pos.remaining = [2]uint8{3, 3}
	}

	// Parse piece placement and pockets (field 0)
	placement, pocket, err := splitPocket(parts[0])
	if err != nil {
		return nil, err
	}
	if pocket != "" && v != Crazyhouse {
		return nil, fmt.Errorf("pieces in hand are only valid in crazyhouse: %s", parts[0])
	}
	if err := parsePiecePlacement(pos, placement); err != nil {
		return nil, err
	}
	if err := parsePocket(pos, pocket); err != nil {
		return nil, err
	}

	// Parse side to move (field 1)
	switch parts[1] {
	case "w":
		pos.turn = White
	case "b":
		pos.turn = Black
	default:
		return nil, fmt.Errorf("invalid side to move: %s", parts[1])
	}

	// Parse castling rights (field 2)
	if err := parseCastlingRights(pos, parts[2]); err != nil {
		return nil, err
	}

	// Parse en passant square (field 3)
	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid en passant square: %s", parts[3])
		}
		pos.epSquare = sq
	}

	rest := parts[4:]

	// Remaining checks as "W+B" (three-check, optional)
	if len(rest) > 0 && strings.Contains(rest[0], "+") && !strings.HasPrefix(rest[0], "+") {
		if v != ThreeCheck {
			return nil, fmt.Errorf("check counters are only valid in three-check: %s", rest[0])
		}
		w, b, err := parseChecks(rest[0])
		if err != nil {
			return nil, err
		}
		if w > 3 || b > 3 {
			return nil, fmt.Errorf("invalid remaining checks: %s", rest[0])
		}
		pos.remaining = [2]uint8{w, b}
		rest = rest[1:]
	}

	// Parse half-move clock (optional)
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "+") {
		hmc, err := strconv.Atoi(rest[0])
		if err != nil {
			return nil, fmt.Errorf("invalid half-move clock: %s", rest[0])
		}
		pos.halfmoves = hmc
		rest = rest[1:]
	}

	// Parse full-move number (optional)
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "+") {
		fmn, err := strconv.Atoi(rest[0])
		if err != nil {
			return nil, fmt.Errorf("invalid full-move number: %s", rest[0])
		}
		pos.fullmoves = fmn
		rest = rest[1:]
	}

	// Checks given as "+W+B" (three-check, optional)
	if len(rest) > 0 {
		if v != ThreeCheck || !strings.HasPrefix(rest[0], "+") {
			return nil, fmt.Errorf("unexpected FEN field: %s", rest[0])
		}
		w, b, err := parseChecks(rest[0][1:])
		if err != nil {
			return nil, err
		}
		if w > 3 || b > 3 {
			return nil, fmt.Errorf("invalid checks given: %s", rest[0])
		}
		pos.remaining = [2]uint8{3 - w, 3 - b}
	}

	return pos, nil
}

// splitPocket separates the crazyhouse pocket from the placement field.
func splitPocket(field string) (placement, pocket string, err error) {
	if i := strings.IndexByte(field, '['); i >= 0 {
		if !strings.HasSuffix(field, "]") {
			return "", "", fmt.Errorf("unterminated pocket: %s", field)
		}
		return field[:i], field[i+1 : len(field)-1], nil
	}
	if rows := strings.Split(field, "/"); len(rows) == 9 {
		return strings.Join(rows[:8], "/"), rows[8], nil
	}
	return field, "", nil
}

// parsePiecePlacement parses the piece placement section of a FEN string.
func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i // FEN starts from rank 8
		file := 0

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if file > 7 {
				return fmt.Errorf("too many squares in rank %d", rank+1)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece := PieceFromChar(c)
			if piece == NoPiece {
				return fmt.Errorf("invalid piece character: %c", c)
			}
			sq := NewSquare(File(file), Rank(rank))
			pos.setPiece(piece, sq)
			if j+1 < len(rankStr) && rankStr[j+1] == '~' {
				if pos.variant != Crazyhouse {
					return fmt.Errorf("promoted markers are only valid in crazyhouse: %s", rankStr)
				}
				pos.promoted |= SquareBB(sq)
				j++
			}
			file++
		}

		if file != 8 {
			return fmt.Errorf("invalid number of squares in rank %d: got %d", rank+1, file)
		}
	}

	return nil
}

// parsePocket parses the pieces in hand, e.g. "Qnn".
func parsePocket(pos *Position, pocket string) error {
	if pocket == "-" {
		return nil
	}
	for i := 0; i < len(pocket); i++ {
		piece := PieceFromChar(pocket[i])
		if piece == NoPiece || piece.Role() == King {
			return fmt.Errorf("invalid piece in hand: %c", pocket[i])
		}
		if pos.pockets[piece.Color()][piece.Role()] == zobrist.MaxPocketCount {
			return fmt.Errorf("too many pieces in hand: %s", pocket)
		}
		pos.pockets[piece.Color()][piece.Role()]++
	}
	return nil
}

// parseCastlingRights parses the castling rights section of a FEN string.
func parseCastlingRights(pos *Position, castling string) error {
	if castling == "-" {
		pos.castling = NoCastling
		return nil
	}

	for _, c := range castling {
		switch c {
		case 'K':
			pos.castling |= WhiteKingSideCastle
		case 'Q':
			pos.castling |= WhiteQueenSideCastle
		case 'k':
			pos.castling |= BlackKingSideCastle
		case 'q':
			pos.castling |= BlackQueenSideCastle
		default:
			return fmt.Errorf("invalid castling character: %c", c)
		}
	}

	return nil
}

// parseChecks parses a "W+B" pair of check counters.
func parseChecks(s string) (white, black uint8, err error) {
	w, b, ok := strings.Cut(s, "+")
	if !ok {
		return 0, 0, fmt.Errorf("invalid check counters: %s", s)
	}
	wn, err := strconv.ParseUint(w, 10, 8)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid check counters %s: %w", s, err)
	}
	bn, err := strconv.ParseUint(b, 10, 8)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid check counters %s: %w", s, err)
	}
	return uint8(wn), uint8(bn), nil
}

// FEN returns the FEN representation of the position, with variant fields
// where the variant has them.
func (p *Position) FEN() string {
	var sb strings.Builder
	p.writeEPD(&sb, p.epSquare)
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmoves))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoves))
	return sb.String()
}

// EPD returns the position without move counters. The en passant field is
// only set when a capture is legal, so two positions with the same EPD have
// the same fingerprint.
func (p *Position) EPD() string {
	var sb strings.Builder
	ep, _ := p.EpSquare()
	p.writeEPD(&sb, ep)
	return sb.String()
}

func (p *Position) writeEPD(sb *strings.Builder, ep Square) {
	// Piece placement
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := NewSquare(File(file), Rank(rank))
			piece := p.PieceAt(sq)
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
			if p.promoted.Has(sq) {
				sb.WriteByte('~')
			}
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if p.variant == Crazyhouse {
		sb.WriteByte('[')
		for _, c := range Colors {
			for _, role := range pocketOrder {
				piece := NewPiece(role, c).String()
				for range p.pockets[c][role] {
					sb.WriteString(piece)
				}
			}
		}
		sb.WriteByte(']')
	}

	// Side to move
	sb.WriteByte(' ')
	if p.turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.castling.String())

	sb.WriteByte(' ')
	sb.WriteString(ep.String())

	if p.variant == ThreeCheck {
		fmt.Fprintf(sb, " %d+%d", p.remaining[White], p.remaining[Black])
	}
}
