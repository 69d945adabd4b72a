package vault

var (
	tagGov            = byte(0x02)
	tagFarm           = byte(0x03)
	tagWant           = byte(0x04)
	tagFeeFundAddress = byte(0x07)
	tagWantLockedTotal = byte(0x13)
)
