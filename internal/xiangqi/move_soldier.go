package xiangqi

// 兵：每次一格，永不后退。未过河只能直进；过河后可以左右横走。
func soldierRule(_ *Board, side Side, from, to Pos) bool {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	if abs(dr)+abs(dc) != 1 {
		return false
	}
	dir := soldierDir(side)
	if dr != 0 && dr != dir {
		return false // 后退
	}
	if !crossedRiver(side, from.Row) {
		return dc == 0
	}
	return true
}
