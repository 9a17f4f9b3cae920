package model

import (
	"fmt"

	"github.com/mc4/chess-ai/internal/chess"
)

// WSMove is a move request from a client. Promotion is a piece name or
// letter and defaults to queen.
type WSMove struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

func (m WSMove) parse() (from, to chess.Square, promo chess.PieceType, err error) {
	if from, err = chess.ParseSquare(m.From); err != nil {
		return
	}
	if to, err = chess.ParseSquare(m.To); err != nil {
		return
	}
	promo = chess.Queen
	if m.Promotion != "" {
		var ok bool
		if promo, ok = chess.ParsePieceType(m.Promotion); !ok {
			err = fmt.Errorf("unknown promotion %q", m.Promotion)
		}
	}
	return
}

type CastleRookMove struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Ply is an applied move as shown to clients.
type Ply struct {
	Piece          PieceView       `json:"piece"`
	From           string          `json:"from"`
	To             string          `json:"to"`
	CapturedPiece  *PieceView      `json:"capturedPiece"`
	CastleRookMove *CastleRookMove `json:"castleRookMove"`
	EnPassant      bool            `json:"enPassant"`
	Promotion      string          `json:"promotion,omitempty"`
	Notation       string          `json:"notation"`
}

func newPly(m *chess.Move) Ply {
	ply := Ply{
		Piece:     newPieceView(&m.Piece),
		From:      m.From.String(),
		To:        m.To.String(),
		EnPassant: m.EnPassant,
		Notation:  m.String(),
	}
	if m.Captured != nil {
		v := newPieceView(m.Captured)
		v.Square = m.CapturedSquare().String()
		ply.CapturedPiece = &v
	}
	if m.Castling {
		row := m.To.Row()
		rookFrom, rookTo := chess.MustSquare(row, 7), chess.MustSquare(row, 5)
		if m.To.Col() == 2 {
			rookFrom, rookTo = chess.MustSquare(row, 0), chess.MustSquare(row, 3)
		}
		ply.CastleRookMove = &CastleRookMove{From: rookFrom.String(), To: rookTo.String()}
	}
	if m.Promotion != nil {
		ply.Promotion = m.Promotion.Type.String()
	}
	return ply
}

// MoveView describes a legal move a client may send back.
type MoveView struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
	Capture   bool   `json:"capture"`
	Castling  bool   `json:"castling"`
	EnPassant bool   `json:"enPassant"`
	Notation  string `json:"notation"`
}

func newMoveViews(moves []*chess.Move) []MoveView {
	views := make([]MoveView, 0, len(moves))
	for _, m := range moves {
		v := MoveView{
			From:      m.From.String(),
			To:        m.To.String(),
			Capture:   m.IsCapture(),
			Castling:  m.Castling,
			EnPassant: m.EnPassant,
			Notation:  m.String(),
		}
		if m.Promotion != nil {
			v.Promotion = m.Promotion.Type.String()
		}
		views = append(views, v)
	}
	return views
}
