//go:build !stm32f30x

package stm32

// Host builds back every peripheral block with ordinary memory so the
// layers above run unchanged on a dev machine. Registers hold whatever was
// last written; there is no behavioural model behind them, with one
// exception: the simulated PLL is always locked (PLLRDY is preset in CR),
// so the ready-spin in the clock bring-up terminates immediately.

var (
	rccBlock   RCC_Type
	flashBlock FLASH_Type
	gpioBlocks [6]GPIO_Type
)

var (
	rcc   = &rccBlock
	flash = &flashBlock
	gpioa = &gpioBlocks[0]
	gpiob = &gpioBlocks[1]
	gpioc = &gpioBlocks[2]
	gpiod = &gpioBlocks[3]
	gpioe = &gpioBlocks[4]
	gpiof = &gpioBlocks[5]
)

const rccCRReset = RCC_CR_HSION | RCC_CR_HSIRDY | RCC_CR_PLLRDY

func init() {
	rcc.CR.Set(rccCRReset)
}

// SimReset returns every simulated block to its reset state and re-arms
// Take. Tests call it to start from fresh silicon; it does not exist on MCU
// builds.
func SimReset() {
	rccBlock = RCC_Type{}
	flashBlock = FLASH_Type{}
	for i := range gpioBlocks {
		gpioBlocks[i] = GPIO_Type{}
	}
	rcc.CR.Set(rccCRReset)
	taken.Store(false)
}
