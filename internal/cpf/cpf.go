package cpf

// Normalize remove todo caractere que não seja dígito decimal.
// Sempre total: entrada vazia devolve string vazia, nunca erro.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// IsValid aplica o algoritmo oficial de dígitos verificadores do CPF.
// Sequências com todos os dígitos iguais (ex: 00000000000) são
// estruturalmente inválidas mesmo passando no checksum.
func IsValid(s string) bool {
	digits := Normalize(s)
	if len(digits) != 11 {
		return false
	}

	allEqual := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	if checkDigit(digits, 9, 10) != int(digits[9]-'0') {
		return false
	}
	if checkDigit(digits, 10, 11) != int(digits[10]-'0') {
		return false
	}

	return true
}

// checkDigit calcula o dígito verificador sobre digits[0:n] com pesos
// firstWeight, firstWeight-1, ..., 2. Resto 10 ou 11 vira 0.
func checkDigit(digits string, n, firstWeight int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (firstWeight - i)
	}

	remainder := (sum * 10) % 11
	if remainder == 10 || remainder == 11 {
		remainder = 0
	}
	return remainder
}
