package presentation

import "cryptostatus/internal/domain"

const UpArt = `. ᕱ__ᕱ
(⸝⸝> ̫ <⸝⸝)
♡/ ∩ ∩ \
`

const DownArt = `･ﾟﾟ･｡   /\__/\ ｡･ﾟﾟ･
｡･ﾟﾟ･( > ᴥ <) ･ﾟﾟ･｡
   (\(__u_u)
`

// Art picks the decorative block. A change of exactly zero gets DownArt.
func Art(s domain.PriceSnapshot) string {
	if s.Rising() {
		return UpArt
	}
	return DownArt
}
