package commands

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"block_cipher_service/internal/domain/cipher"
	"block_cipher_service/internal/infrastructure/cryptography"
	"block_cipher_service/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// BlockCommandHandler encapsulates logic for handling block cipher operations via CLI.
type BlockCommandHandler struct {
	processor cipher.BlockProcessor
	logger    logger.Logger
}

// NewBlockCommandHandler initializes and returns a BlockCommandHandler instance with
// configured logger and block processor.
func NewBlockCommandHandler() (*BlockCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	processor, err := cryptography.NewRijndaelProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create block processor: %w", err)
	}

	return &BlockCommandHandler{
		processor: processor,
		logger:    loggerInstance,
	}, nil
}

// GenerateKeyCmd generates a raw key and persists it in a selected directory
func (commandHandler *BlockCommandHandler) GenerateKeyCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag ", err)
		return
	}

	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag ", err)
		return
	}

	uniqueID := uuid.New()

	rawKey, err := commandHandler.processor.GenerateKey(keySize)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	keyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-block-cipher-key.bin", uniqueID))
	err = os.WriteFile(keyFilePath, rawKey, 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Raw key saved to ", keyFilePath)
}

// CookKeyCmd expands a raw key file into a cooked-key schedule file
func (commandHandler *BlockCommandHandler) CookKeyCmd(cmd *cobra.Command, _ []string) {
	keyFilePath, err := cmd.Flags().GetString("key-file")
	if err != nil {
		commandHandler.logger.Error("invalid key-file flag ", err)
		return
	}
	outputFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag ", err)
		return
	}
	direction, err := cmd.Flags().GetString("direction")
	if err != nil {
		commandHandler.logger.Error("invalid direction flag ", err)
		return
	}

	rawKey, err := os.ReadFile(filepath.Clean(keyFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	var cooked []byte
	switch direction {
	case "encrypt":
		cooked, err = commandHandler.processor.CookEncryptKey(rawKey)
	case "decrypt":
		cooked, err = commandHandler.processor.CookDecryptKey(rawKey)
	default:
		commandHandler.logger.Error("direction must be encrypt or decrypt, got ", direction)
		return
	}
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	err = os.WriteFile(outputFilePath, cooked, 0600)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.logger.Info("Cooked key saved to ", outputFilePath)
}

// EncryptBlockCmd encrypts a single hex-encoded 16-byte block with a cooked key
func (commandHandler *BlockCommandHandler) EncryptBlockCmd(cmd *cobra.Command, _ []string) {
	commandHandler.transformBlockCmd(cmd, commandHandler.processor.Encrypt)
}

// DecryptBlockCmd decrypts a single hex-encoded 16-byte block with a cooked key
func (commandHandler *BlockCommandHandler) DecryptBlockCmd(cmd *cobra.Command, _ []string) {
	commandHandler.transformBlockCmd(cmd, commandHandler.processor.Decrypt)
}

func (commandHandler *BlockCommandHandler) transformBlockCmd(cmd *cobra.Command, transform func([]byte, int, []byte, int, []byte, int) error) {
	cookedKeyPath, err := cmd.Flags().GetString("cooked-key-file")
	if err != nil {
		commandHandler.logger.Error("invalid cooked-key-file flag ", err)
		return
	}
	blockHex, err := cmd.Flags().GetString("block")
	if err != nil {
		commandHandler.logger.Error("invalid block flag ", err)
		return
	}

	cookedKey, err := os.ReadFile(filepath.Clean(cookedKeyPath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	src, err := hex.DecodeString(blockHex)
	if err != nil {
		commandHandler.logger.Error("block must be hex encoded ", err)
		return
	}
	if len(src) != cipher.BlockSize {
		commandHandler.logger.Error("block must be exactly ", cipher.BlockSize, " bytes, got ", len(src))
		return
	}

	dst := make([]byte, cipher.BlockSize)
	if err := transform(cookedKey, 0, src, 0, dst, 0); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(dst))
}

// InitBlockCommands registers block cipher commands
func InitBlockCommands(rootCmd *cobra.Command) error {
	handler, err := NewBlockCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create block command handler %w", err)
	}

	var generateKeyCmd = &cobra.Command{
		Use:   "generate-key",
		Short: "Generate a raw block cipher key",
		Run:   handler.GenerateKeyCmd,
	}
	generateKeyCmd.Flags().IntP("key-size", "", 16, "Key size in bytes: 16, 24 or 32")
	generateKeyCmd.Flags().StringP("key-dir", "", "", "Directory to store the generated key")
	rootCmd.AddCommand(generateKeyCmd)

	var cookKeyCmd = &cobra.Command{
		Use:   "cook-key",
		Short: "Expand a raw key into a cooked round-key schedule",
		Run:   handler.CookKeyCmd,
	}
	cookKeyCmd.Flags().StringP("key-file", "", "", "Path to the raw key file")
	cookKeyCmd.Flags().StringP("output-file", "", "", "Path to the cooked key output file")
	cookKeyCmd.Flags().StringP("direction", "", "encrypt", "Schedule orientation: encrypt or decrypt")
	rootCmd.AddCommand(cookKeyCmd)

	var encryptBlockCmd = &cobra.Command{
		Use:   "encrypt-block",
		Short: "Encrypt a single 16-byte block",
		Run:   handler.EncryptBlockCmd,
	}
	encryptBlockCmd.Flags().StringP("cooked-key-file", "", "", "Path to an encryption-oriented cooked key")
	encryptBlockCmd.Flags().StringP("block", "", "", "Hex-encoded 16-byte plaintext block")
	rootCmd.AddCommand(encryptBlockCmd)

	var decryptBlockCmd = &cobra.Command{
		Use:   "decrypt-block",
		Short: "Decrypt a single 16-byte block",
		Run:   handler.DecryptBlockCmd,
	}
	decryptBlockCmd.Flags().StringP("cooked-key-file", "", "", "Path to a decryption-oriented cooked key")
	decryptBlockCmd.Flags().StringP("block", "", "", "Hex-encoded 16-byte ciphertext block")
	rootCmd.AddCommand(decryptBlockCmd)

	return nil
}
