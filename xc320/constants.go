package xc320

// Copyright © 2026 Xzrayツ. Licensed under the Apache-2.0 license.
// Fixed constant tables of the XC320 function. Every value here is part of the
// bit-exact contract: the round-constant table feeds the little boxes, the
// salt seed feeds the salt schedule, and the iv words seed the running state.

// Size is the digest length in bytes (320 bits).
const Size = 40

// BlockSize is the compression block length in bytes.
const BlockSize = 128

const (
	littleBoxCount     = 10 // little boxes per big box
	bigBoxCount        = 5  // big-box stages in the finalizer
	littleBoxProcesses = 10 // words per little-box lane
	rcSize             = 128
	rcMask             = rcSize - 1
)

// rc is indexed modulo 128 throughout; rcSize is a power of two so the
// reduction is a single mask. The first 64 entries are the SHA-512 round
// constants, the next 24 come from Keccak, and the remaining 40 are further
// fixed words.
var rc = [rcSize]uint64{
	0x428A2F98D728AE22, 0x7137449123EF65CD, 0xB5C0FBCFEC4D3B2F, 0xE9B5DBA58189DBBC,
	0x3956C25BF348B538, 0x59F111F1B605D019, 0x923F82A4AF194F9B, 0xAB1C5ED5DA6D8118,
	0xD807AA98A3030242, 0x12835B0145706FBE, 0x243185BE4EE4B28C, 0x550C7DC3D5FFB4E2,
	0x72BE5D74F27B896F, 0x80DEB1FE3B1696B1, 0x9BDC06A725C71235, 0xC19BF174CF692694,
	0xE49B69C19EF14AD2, 0xEFBE4786384F25E3, 0x0FC19DC68B8CD5B5, 0x240CA1CC77AC9C65,
	0x2DE92C6F592B0275, 0x4A7484AA6EA6E483, 0x5CB0A9DCBD41FBD4, 0x76F988DA831153B5,
	0x983E5152EE66DFAB, 0xA831C66D2DB43210, 0xB00327C898FB213F, 0xBF597FC7BEEF0EE4,
	0xC6E00BF33DA88FC2, 0xD5A79147930AA725, 0x06CA6351E003826F, 0x142929670A0E6E70,
	0x27B70A8546D22FFC, 0x2E1B21385C26C926, 0x4D2C6DFC5AC42AED, 0x53380D139D95B3DF,
	0x650A73548BAF63DE, 0x766A0ABB3C77B2A8, 0x81C2C92E47EDAEE6, 0x92722C851482353B,
	0xA2BFE8A14CF10364, 0xA81A664BBC423001, 0xC24B8B70D0F89791, 0xC76C51A30654BE30,
	0xD192E819D6EF5218, 0xD69906245565A910, 0xF40E35855771202A, 0x106AA07032BBD1B8,
	0x19A4C116B8D2D0C8, 0x1E376C085141AB53, 0x2748774CDF8EEB99, 0x34B0BCB5E19B48A8,
	0x391C0CB3C5C95A63, 0x4ED8AA4AE3418ACB, 0x5B9CCA4F7763E373, 0x682E6FF3D6B2B8A3,
	0x748F82EE5DEFB2FC, 0x78A5636F43172F60, 0x84C87814A1F0AB72, 0x8CC702081A6439EC,
	0x90BEFFFA23631E28, 0xA4506CEBDE82BDE9, 0xBEF9A3F7B2C67915, 0xC67178F2E372532B,

	0x0000000000000001, 0x0000000000008082, 0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088, 0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800A, 0x800000008000000A,
	0x8000000000008080, 0x8000000080008008, 0x6A09E667F2BDC948, 0x132435465768798A,

	0xC0D1E2F3A4B59687, 0x78695A4B3C2D1E0F, 0xA96F30BC163138AA, 0xCBF29CE484222325,
	0x6C7967656E657261, 0x646F72616E646F6D, 0xCA273ECEEA26619C, 0xF4846468E8DF0C0B,
	0x18695A087A5C0593, 0x23B41638005C0F2D, 0x2D491CBFB1D3A637, 0x324B42C185E58F9E,
	0x3A1010A7B8D67679, 0x3F73C4AF18518865, 0x5A0DEEEFF85E0B80, 0x5E9D7A75E2F1B5CB,

	0x667F9CFB7B3C9D3F, 0x6C78E7A5948A265C, 0x6C6E7E9A7C5D3A1F, 0x7A0D6C2D0B8F5E3A,
	0x7B0C9E5A6D3F1D8C, 0x8A0F5E3C7D1B9A6F, 0x8C2D5E3F7A1B9C6D, 0x9A0B8C7D6E5F4A3B,
	0xE38DEE4DB0FB0E4E, 0xB1C2D3E4F5061728, 0xC1D2E3F405162738, 0xD1E2F30415263748,
	0xE1F2031425364758, 0xF102132435465768, 0xE58001F9E5CFFA7E, 0xD1AA379F9C4B9809,
	0x993A2F8B88C1B63F, 0x579A01155E6D4196, 0xBB0FC70B1266B3F1, 0xDE509C2F03B01495,
	0x8859485125BC297C, 0x102B36560F6E68E6, 0xE2D0C0A896B87C6E, 0x4F5E6A7B8C9DAFB1,
}

// saltSeed initializes the salt schedule's working array: SHA-2 initial
// values, π digits, and additional fixed words.
var saltSeed = [32]uint64{
	0x6A09E667F3BCC908, 0xBB67AE8584CAA73B,
	0x3C6EF372FE94F82B, 0xA54FF53A5F1D36F1,
	0x510E527FADE682D1, 0x9B05688C2B3E6C1F,
	0x1F83D9ABFB41BD6B, 0x5BE0CD19137E2179,
	0xCBBB9D5DC1059ED8, 0x629A292A367CD507,
	0x9159015A3070DD17, 0x152FECD8F70E5939,
	0x67332667FFC00B31, 0x8EB44A8768581511,
	0xDB0C2E0D64F98FA7, 0x47B5481DBEFA4FA4,
	0x243F6A8885A308D3, 0x13198A2E03707344,
	0xA4093822299F31D0, 0x082EFA98EC4E6C89,
	0x452821E638D01377, 0xBE5466CF34E90C6C,
	0xC0AC29B7C97C50DD, 0x3F84D5B5B5470917,
	0x8367E295D4C1B8A3, 0xF4E6D2C5B1A79860,
	0x2B5D7C9F8E4A3617, 0xC8D4E2F6B9A31750,
	0x7E3F9A2C5D8B6419, 0xA6D2F8C4E1B79530,
	0x4B7F9E2D5C8A6318, 0xD5F2E7C4B9A16830,
}

// iv holds the fixed initial state words before the init-mix runs.
var iv = [5]uint64{
	0xBB67AE854A7D9E31,
	0x5BE0CD19B7F3A69C,
	0x6A09E667F2B5C8D3,
	0x3C6EF372D8B4F1A6,
	0x510E527F4D8C3A92,
}

// Version returns the version string of this implementation.
func Version() string { return "XzalgoChain 0.0.1 - 320-bit" }
