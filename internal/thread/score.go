package thread

// ControversyScore rates how contested a comment's votes are. It favors
// near-even splits with high total volume: total votes scaled by the ratio
// of the smaller side to the larger. A comment with no votes on one side
// scores zero.
func ControversyScore(upvotes, downvotes int) float64 {
	if upvotes == 0 || downvotes == 0 {
		return 0
	}
	total := float64(upvotes + downvotes)
	var balance float64
	if upvotes > downvotes {
		balance = float64(downvotes) / float64(upvotes)
	} else {
		balance = float64(upvotes) / float64(downvotes)
	}
	return total * balance
}
