package model

import "github.com/mc4/chess-ai/internal/chess"

type PieceView struct {
	Type   string `json:"type"`
	Color  string `json:"color"`
	Square string `json:"square"`
}

func newPieceView(p *chess.Piece) PieceView {
	return PieceView{
		Type:   p.Type.String(),
		Color:  p.Color.String(),
		Square: p.Square().String(),
	}
}

// BoardState is the board as clients draw it: Board[0] is rank 8 and
// Board[y][x] is file x.
type BoardState struct {
	Board             [][]*PieceView `json:"board"`
	WhiteKingPosition string         `json:"whiteKingPosition"`
	BlackKingPosition string         `json:"blackKingPosition"`
}

func newBoardState(b *chess.Board) *BoardState {
	view := &BoardState{}
	for y := 0; y < 8; y++ {
		row := make([]*PieceView, 8)
		for x := 0; x < 8; x++ {
			if p := b.PieceAt(chess.MustSquare(7-y, x)); p != nil {
				v := newPieceView(p)
				row[x] = &v
			}
		}
		view.Board = append(view.Board, row)
	}
	if sq, ok := b.KingSquare(chess.White); ok {
		view.WhiteKingPosition = sq.String()
	}
	if sq, ok := b.KingSquare(chess.Black); ok {
		view.BlackKingPosition = sq.String()
	}
	return view
}
