package main

import "fmt"

func main() {
	// --- General Info ---
	fmt.Println("--- eo Terminal Capability Test ---")
	fmt.Println("Note: If you see raw escape codes (like '[1m'), your terminal is not interpreting ANSI.")
	fmt.Println("Enhanced replies rely on the styles below.")
	fmt.Println()

	// --- Styles the sanitizer emits ---
	fmt.Println("--- Reply Styles ---")
	fmt.Println("\033[1mThis should be BOLD.\033[0m (Normal)")
	fmt.Println("\033[31mThis should be RED.\033[0m (Normal)")
	fmt.Println("\033[32mThis should be GREEN.\033[0m (Normal)")
	fmt.Println("\033[33mThis should be YELLOW.\033[0m (Normal)")
	fmt.Println("\033[34mThis should be BLUE.\033[0m (Normal)")
	fmt.Println("\033[33m\033[1mCombined: color and BOLD, as color tags render.\033[0m (Normal)")
	fmt.Println()

	// --- 256 Colors (Sample) ---
	fmt.Println("--- 256 Colors (JSON syntax highlighting) ---")
	fmt.Println("If your terminal supports 256 colors (e.g., TERM=xterm-256color):")
	for i := 0; i < 6; i++ {
		colorCode := 16 + i*36
		fmt.Printf("\033[38;5;%dmColor %3d\033[0m  ", colorCode, colorCode)
	}
	fmt.Println()
	fmt.Println()

	// --- Unicode Characters ---
	fmt.Println("--- Unicode Characters ---")
	fmt.Println("Prompt icons: ★ ► ✔")
	fmt.Println("Spinner frames: ⠋ ⠙ ⠹ ⠸ ⠼ ⠴ ⠦ ⠧ ⠇ ⠏")
	fmt.Println("Renderer dash: ─")
	fmt.Println("Test for wide characters (e.g., Japanese): こんにちは世界 (Hello World)")
	fmt.Println()

	// --- Line Control (spinner redraw) ---
	fmt.Println("--- Line Control (Sending Codes - Visual effect varies) ---")
	fmt.Print("These words should be replaced.")
	fmt.Print("\r\033[K")
	fmt.Println("Line cleared and redrawn.")
	fmt.Println()

	fmt.Println("--- Test Complete ---")
}
