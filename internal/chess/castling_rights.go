package chess

// CastlingRights holds the four castling flags. Flags are only ever cleared.
type CastlingRights struct {
	WhiteKingside  bool `json:"whiteKingside"`
	WhiteQueenside bool `json:"whiteQueenside"`
	BlackKingside  bool `json:"blackKingside"`
	BlackQueenside bool `json:"blackQueenside"`
}

func AllCastlingRights() CastlingRights {
	return CastlingRights{true, true, true, true}
}

func (r CastlingRights) Kingside(c Color) bool {
	if c == White {
		return r.WhiteKingside
	}
	return r.BlackKingside
}

func (r CastlingRights) Queenside(c Color) bool {
	if c == White {
		return r.WhiteQueenside
	}
	return r.BlackQueenside
}

func (r *CastlingRights) DisableKingside(c Color) {
	if c == White {
		r.WhiteKingside = false
	} else {
		r.BlackKingside = false
	}
}

func (r *CastlingRights) DisableQueenside(c Color) {
	if c == White {
		r.WhiteQueenside = false
	} else {
		r.BlackQueenside = false
	}
}

func (r *CastlingRights) DisableAll(c Color) {
	r.DisableKingside(c)
	r.DisableQueenside(c)
}

// UpdateOnMove clears rights when a king moves, or a rook leaves its corner.
func (r *CastlingRights) UpdateOnMove(p *Piece, from Square) {
	switch p.Type {
	case King:
		r.DisableAll(p.Color)
	case Rook:
		r.clearCorner(p.Color, from)
	}
}

// UpdateOnCapture clears the victim's right when a rook is taken on its corner.
func (r *CastlingRights) UpdateOnCapture(captured *Piece, at Square) {
	if captured != nil && captured.Type == Rook {
		r.clearCorner(captured.Color, at)
	}
}

func (r *CastlingRights) clearCorner(c Color, sq Square) {
	if sq.row != c.homeRow() {
		return
	}
	switch sq.col {
	case 0:
		r.DisableQueenside(c)
	case 7:
		r.DisableKingside(c)
	}
}

// String uses FEN letters, "-" when no right remains.
func (r CastlingRights) String() string {
	s := ""
	if r.WhiteKingside {
		s += "K"
	}
	if r.WhiteQueenside {
		s += "Q"
	}
	if r.BlackKingside {
		s += "k"
	}
	if r.BlackQueenside {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}
